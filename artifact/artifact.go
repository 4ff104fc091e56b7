package artifact

import (
	"fmt"
	"os"
	"time"

	"github.com/arloliu/olsbench/bench"
	"github.com/arloliu/olsbench/compress"
	"github.com/arloliu/olsbench/endian"
	"github.com/arloliu/olsbench/errs"
	"github.com/arloliu/olsbench/format"
	"github.com/arloliu/olsbench/internal/hash"
	"github.com/arloliu/olsbench/internal/options"
	"github.com/arloliu/olsbench/internal/pool"
)

const (
	// MagicNumber identifies olsbench artifact data ("OLSB" little-endian).
	MagicNumber uint32 = 0x42534C4F

	// Version is the current artifact format version.
	Version byte = 1

	headerSize = 32

	// entryMinSize is the smallest possible payload entry: a uint16 name
	// length plus a uint32 sample count, both zero.
	entryMinSize = 6
)

// Run bundles everything an artifact stores about one benchmark run.
type Run struct {
	// Fingerprint is the xxHash64 of the dataset the run measured.
	Fingerprint uint64
	// Measurements are the raw per-strategy timing samples.
	Measurements []bench.Measurement
}

// Config holds encoding parameters.
type Config struct {
	// Compression selects the payload codec.
	Compression format.CompressionType
}

// Option is a functional option for artifact encoding.
type Option = options.Option[*Config]

// WithCompression selects the payload compression codec.
// The default is Zstd.
func WithCompression(c format.CompressionType) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Compression = c
	})
}

// Encode serializes a run into the artifact format.
//
// The payload is built in a pooled buffer, checksummed, then compressed
// with the configured codec (Zstd by default).
func Encode(run Run, opts ...Option) ([]byte, error) {
	cfg := Config{Compression: format.CompressionZstd}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.Compression, "artifact payload")
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()

	buf := pool.GetArtifactBuffer()
	defer pool.PutArtifactBuffer(buf)

	for _, m := range run.Measurements {
		if len(m.Name) > 0xFFFF {
			return nil, fmt.Errorf("measurement name too long: %d bytes", len(m.Name))
		}
		buf.B = engine.AppendUint16(buf.B, uint16(len(m.Name)))
		buf.B = append(buf.B, m.Name...)
		buf.B = engine.AppendUint32(buf.B, uint32(len(m.Samples)))
		for _, d := range m.Samples {
			buf.B = engine.AppendUint64(buf.B, uint64(d.Nanoseconds()))
		}
	}

	payload := buf.Bytes()
	checksum := hash.Sum64(payload)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress artifact payload: %w", err)
	}

	out := make([]byte, 0, headerSize+len(compressed))
	out = engine.AppendUint32(out, MagicNumber)
	out = append(out, Version, byte(cfg.Compression), 0, 0)
	out = engine.AppendUint64(out, run.Fingerprint)
	out = engine.AppendUint64(out, checksum)
	out = engine.AppendUint32(out, uint32(len(run.Measurements)))
	out = engine.AppendUint32(out, uint32(len(payload)))
	out = append(out, compressed...)

	return out, nil
}

// Decode parses artifact data produced by Encode.
//
// It validates the magic number, version, and payload checksum before
// parsing entries, so corrupted or truncated data fails fast with a
// sentinel error instead of yielding garbage samples.
func Decode(data []byte) (Run, error) {
	if len(data) < headerSize {
		return Run{}, fmt.Errorf("%w: %d bytes is smaller than the %d-byte header",
			errs.ErrTruncatedArtifact, len(data), headerSize)
	}

	engine := endian.GetLittleEndianEngine()

	if magic := engine.Uint32(data[0:4]); magic != MagicNumber {
		return Run{}, fmt.Errorf("%w: 0x%08X", errs.ErrInvalidMagicNumber, magic)
	}
	if version := data[4]; version != Version {
		return Run{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	compression := format.CompressionType(data[5])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return Run{}, err
	}

	fingerprint := engine.Uint64(data[8:16])
	checksum := engine.Uint64(data[16:24])
	entryCount := int(engine.Uint32(data[24:28]))
	payloadLen := int(engine.Uint32(data[28:32]))

	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return Run{}, fmt.Errorf("failed to decompress artifact payload: %w", err)
	}

	if len(payload) != payloadLen {
		return Run{}, fmt.Errorf("%w: payload is %d bytes, header declares %d",
			errs.ErrTruncatedArtifact, len(payload), payloadLen)
	}
	if hash.Sum64(payload) != checksum {
		return Run{}, errs.ErrChecksumMismatch
	}

	// Each entry occupies at least 6 bytes (name length + sample count).
	// Checking the declared count against the payload before sizing the
	// slice keeps a forged header from forcing a huge allocation.
	if minPayload := entryCount * entryMinSize; minPayload > len(payload) {
		return Run{}, fmt.Errorf("%w: %d entries need at least %d payload bytes, have %d",
			errs.ErrTruncatedArtifact, entryCount, minPayload, len(payload))
	}

	run := Run{
		Fingerprint:  fingerprint,
		Measurements: make([]bench.Measurement, 0, entryCount),
	}

	pos := 0
	for i := 0; i < entryCount; i++ {
		if pos+2 > len(payload) {
			return Run{}, fmt.Errorf("%w: entry %d name length", errs.ErrTruncatedArtifact, i)
		}
		nameLen := int(engine.Uint16(payload[pos : pos+2]))
		pos += 2

		if pos+nameLen+4 > len(payload) {
			return Run{}, fmt.Errorf("%w: entry %d name and sample count", errs.ErrTruncatedArtifact, i)
		}
		name := string(payload[pos : pos+nameLen])
		pos += nameLen

		sampleCount := int(engine.Uint32(payload[pos : pos+4]))
		pos += 4

		if pos+8*sampleCount > len(payload) {
			return Run{}, fmt.Errorf("%w: entry %d samples", errs.ErrTruncatedArtifact, i)
		}

		samples := make([]time.Duration, sampleCount)
		for j := 0; j < sampleCount; j++ {
			samples[j] = time.Duration(engine.Uint64(payload[pos : pos+8]))
			pos += 8
		}

		run.Measurements = append(run.Measurements, bench.Measurement{
			Name:    name,
			Samples: samples,
		})
	}

	if pos != len(payload) {
		return Run{}, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrTruncatedArtifact, len(payload)-pos)
	}

	return run, nil
}

// EncodeToFile encodes a run and writes it to path.
func EncodeToFile(path string, run Run, opts ...Option) error {
	data, err := Encode(run, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DecodeFile reads and decodes an artifact from path.
func DecodeFile(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, err
	}

	return Decode(data)
}

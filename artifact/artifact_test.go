package artifact

import (
	"encoding/binary"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/olsbench/bench"
	"github.com/arloliu/olsbench/errs"
	"github.com/arloliu/olsbench/format"
)

func testRun() Run {
	return Run{
		Fingerprint: 0xDEADBEEFCAFEF00D,
		Measurements: []bench.Measurement{
			{
				Name:    "qr",
				Samples: []time.Duration{1500 * time.Microsecond, 1520 * time.Microsecond, 1490 * time.Microsecond},
			},
			{
				Name:    "normal-solve",
				Samples: []time.Duration{310 * time.Microsecond, 305 * time.Microsecond},
			},
			{
				Name:    "accum",
				Samples: []time.Duration{55 * time.Microsecond},
			},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	run := testRun()

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, c := range compressions {
		t.Run(c.String(), func(t *testing.T) {
			data, err := Encode(run, WithCompression(c))
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(data), headerSize)

			decoded, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, run.Fingerprint, decoded.Fingerprint)
			require.Equal(t, run.Measurements, decoded.Measurements)
		})
	}
}

func TestEncodeDefaultCompression(t *testing.T) {
	data, err := Encode(testRun())
	require.NoError(t, err)
	require.Equal(t, byte(format.CompressionZstd), data[5])
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode([]byte{0x4F, 0x4C})
	require.ErrorIs(t, err, errs.ErrTruncatedArtifact)
}

func TestDecodeBadMagic(t *testing.T) {
	data, err := Encode(testRun())
	require.NoError(t, err)

	data[0] ^= 0xFF
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	data, err := Encode(testRun())
	require.NoError(t, err)

	data[4] = Version + 1
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestDecodeUnknownCompression(t *testing.T) {
	data, err := Encode(testRun())
	require.NoError(t, err)

	data[5] = 0x7F
	_, err = Decode(data)
	require.Error(t, err)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	// NoOp compression so payload bytes can be corrupted directly without
	// breaking the codec framing first.
	data, err := Encode(testRun(), WithCompression(format.CompressionNone))
	require.NoError(t, err)

	data[len(data)-1] ^= 0x01
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecodeTruncatedPayload(t *testing.T) {
	data, err := Encode(testRun(), WithCompression(format.CompressionNone))
	require.NoError(t, err)

	// Chop off the tail of the payload; the declared length no longer fits.
	_, err = Decode(data[:len(data)-4])
	require.ErrorIs(t, err, errs.ErrTruncatedArtifact)
}

func TestDecodeOversizedEntryCount(t *testing.T) {
	// A header claiming fifty million entries over an empty payload still
	// carries a valid checksum. Decode must reject it from the declared
	// count alone instead of pre-allocating gigabytes.
	data, err := Encode(Run{}, WithCompression(format.CompressionNone))
	require.NoError(t, err)
	require.Len(t, data, headerSize)

	binary.LittleEndian.PutUint32(data[24:28], 50_000_000)
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrTruncatedArtifact)
}

func TestEncodeEmptyRun(t *testing.T) {
	data, err := Encode(Run{Fingerprint: 42}, WithCompression(format.CompressionNone))
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, uint64(42), decoded.Fingerprint)
	require.Empty(t, decoded.Measurements)
}

func TestEncodeToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.olsb")
	run := testRun()

	require.NoError(t, EncodeToFile(path, run, WithCompression(format.CompressionS2)))

	decoded, err := DecodeFile(path)
	require.NoError(t, err)
	require.Equal(t, run.Measurements, decoded.Measurements)
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.olsb"))
	require.Error(t, err)
}

func TestMagicBytes(t *testing.T) {
	data, err := Encode(Run{}, WithCompression(format.CompressionNone))
	require.NoError(t, err)
	require.Equal(t, []byte("OLSB"), data[0:4])
}

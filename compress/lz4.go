package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// Leading frame byte of the compressed output. CompressBlock signals
// incompressible input by returning zero bytes, so a raw passthrough
// marker is needed to keep small payloads round-trippable.
const (
	lz4FrameRaw   = 0x0
	lz4FrameBlock = 0x1
)

// LZ4Compressor provides LZ4 block compression, favoring decompression
// speed over ratio.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 block compression.
//
// Uses a pooled lz4.Compressor for better performance. Input that LZ4
// cannot shrink is stored raw behind the frame marker.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dstSize := lz4.CompressBlockBound(len(data))
	dst := make([]byte, dstSize+1)
	dst[0] = lz4FrameBlock

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible input.
		raw := make([]byte, len(data)+1)
		raw[0] = lz4FrameRaw
		copy(raw[1:], data)

		return raw, nil
	}

	return dst[:n+1], nil
}

// Decompress decompresses data using LZ4 block decompression.
//
// LZ4 blocks do not record the decompressed size, so this method uses an
// adaptive buffer strategy:
//  1. Start with a buffer 4x the compressed size (common expansion ratio)
//  2. On ErrInvalidSourceShortBuffer, double the buffer size
//  3. Give up once the buffer exceeds a 128MB safety limit
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	frame, block := data[0], data[1:]
	if frame == lz4FrameRaw {
		out := make([]byte, len(block))
		copy(out, block)

		return out, nil
	}
	if frame != lz4FrameBlock {
		return nil, errors.New("lz4: unknown frame marker")
	}
	if len(block) == 0 {
		return nil, nil
	}

	bufSize := len(block) * 4
	const maxSize = 128 * 1024 * 1024 // 128MB safety limit

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(block, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	// Buffer exceeded maxSize - likely corrupted data or an unreasonable
	// compression ratio.
	return nil, lz4.ErrInvalidSourceShortBuffer
}

// Package compress provides compression codecs for olsbench artifact payloads.
//
// Raw timing samples are serialized as fixed-width little-endian integers
// before archival, which compresses well with general-purpose codecs. The
// package supports multiple algorithms so callers can trade ratio for speed:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected by format.CompressionType via GetCodec or CreateCodec.
// The artifact package records the selected type in its header so decoding
// picks the matching codec automatically.
//
// All codec implementations are stateless or internally pooled and safe for
// concurrent use.
package compress

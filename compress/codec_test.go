package compress

import (
	"testing"

	"github.com/arloliu/olsbench/format"
	"github.com/stretchr/testify/require"
)

// samplePayload builds a payload resembling serialized timing samples:
// monotonically increasing little-endian uint64 nanosecond values.
func samplePayload(n int) []byte {
	data := make([]byte, 0, n*8)
	ns := uint64(1_500_000)
	for i := 0; i < n; i++ {
		ns += uint64(i%7) * 1024
		for shift := 0; shift < 64; shift += 8 {
			data = append(data, byte(ns>>shift))
		}
	}

	return data
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		name    string
		ctype   format.CompressionType
		wantErr bool
	}{
		{"none", format.CompressionNone, false},
		{"zstd", format.CompressionZstd, false},
		{"s2", format.CompressionS2, false},
		{"lz4", format.CompressionLZ4, false},
		{"invalid", format.CompressionType(0xFF), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := CreateCodec(tt.ctype, "payload")
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, codec)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}
}

func TestGetCodec(t *testing.T) {
	for _, ctype := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ctype)
		require.NoError(t, err, "builtin codec for %s", ctype)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0x42))
	require.Error(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	payload := samplePayload(1000)

	codecs := map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodecCompressesRepetitiveData(t *testing.T) {
	payload := samplePayload(4000)

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload),
				"fixed-width sample data should compress")
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for name, codec := range map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestLZ4DecompressCorrupted(t *testing.T) {
	codec := NewLZ4Compressor()

	// Random-ish garbage that is not a valid LZ4 block.
	_, err := codec.Decompress([]byte{0xFF, 0xFE, 0xFD, 0xFC, 0x00, 0x01})
	require.Error(t, err)
}

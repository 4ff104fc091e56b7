// Package artifact implements a compact binary archive for raw benchmark
// timing samples, so runs can be stored, shipped, and re-analyzed without
// re-running the measurements.
//
// # Layout
//
// An artifact is a fixed 32-byte header followed by a compressed payload:
//
//	offset  size  field
//	0       4     magic number, the bytes "OLSB"
//	4       1     format version (currently 1)
//	5       1     compression type (format.CompressionType)
//	6       2     reserved, zero
//	8       8     dataset fingerprint (xxHash64 from simdata)
//	16      8     payload checksum (xxHash64 of the uncompressed payload)
//	24      4     measurement entry count
//	28      4     uncompressed payload length in bytes
//
// The payload concatenates one entry per measurement:
//
//	nameLen uint16, name bytes, sampleCount uint32,
//	samples as little-endian uint64 nanoseconds
//
// All integers are little-endian. The checksum is computed over the
// uncompressed payload, so corruption is detected regardless of which codec
// produced the data.
//
// # Basic Usage
//
//	data, err := artifact.Encode(artifact.Run{
//	    Fingerprint:  dataset.Fingerprint(),
//	    Measurements: measurements,
//	}, artifact.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	run, err := artifact.Decode(data)
package artifact

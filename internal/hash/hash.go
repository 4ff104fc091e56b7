// Package hash provides the xxHash64 helpers used for dataset fingerprints
// and artifact payload checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// New returns a streaming xxHash64 digest for incremental hashing.
func New() *xxhash.Digest {
	return xxhash.New()
}

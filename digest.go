package fastcdc

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"lukechampine.com/blake3"
)

// Digest computes a textual (hexadecimal) digest of a chunk's bytes. The
// core invokes it exactly once per emitted chunk, after the chunk length
// is decided and before the record is yielded (spec §4.5). Implementations
// must be deterministic and side-effect-free.
type Digest interface {
	Sum(data []byte) string
}

// DigestFunc adapts a plain function to the Digest interface.
type DigestFunc func(data []byte) string

// Sum calls f(data).
func (f DigestFunc) Sum(data []byte) string { return f(data) }

// SHA256Digest returns a Digest that hex-encodes a SHA-256 sum. It needs
// no external library because crypto/sha256 is part of the standard
// library. No digest is applied unless one is passed to WithDigest.
func SHA256Digest() Digest {
	return DigestFunc(func(data []byte) string {
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	})
}

// XXHashDigest returns a Digest backed by xxHash64, a common choice for
// deduplication indexes that value raw speed over cryptographic strength.
func XXHashDigest() Digest {
	return DigestFunc(func(data []byte) string {
		sum := xxhash.Sum64(data)
		return hex.EncodeToString([]byte{
			byte(sum >> 56), byte(sum >> 48), byte(sum >> 40), byte(sum >> 32),
			byte(sum >> 24), byte(sum >> 16), byte(sum >> 8), byte(sum),
		})
	})
}

// BLAKE3Digest returns a Digest backed by BLAKE3, a common choice for
// content-addressed storage that wants cryptographic strength with
// tree-hash-friendly performance.
func BLAKE3Digest() Digest {
	return DigestFunc(func(data []byte) string {
		sum := blake3.Sum256(data)
		return hex.EncodeToString(sum[:])
	})
}

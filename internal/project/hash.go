package project

import "crypto/sha256"

// Digest is a content hash used to key the driver's check-result cache.
type Digest [32]byte

// HashBytes hashes a file's raw contents.
func HashBytes(content []byte) Digest {
	return Digest(sha256.Sum256(content))
}

// Combine folds a manifest digest together with every source file digest it
// covers, so a cache entry keyed on the result changes whenever any input
// to a check run changes, not just the file being re-checked.
func Combine(manifest Digest, files ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(manifest[:])
	for _, f := range files {
		_, _ = h.Write(f[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash returns the SHA-256 content hash of data as a 64-character hex
// string. Scene sources are hashed this way before keying, so renaming
// or re-saving an unchanged scene file still hits the cache.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a namespaced cache key from the given components. The
// components are serialized and hashed together, so any render option
// that participates produces a distinct key; the full 256-bit digest is
// kept to rule out collisions between scene variants.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

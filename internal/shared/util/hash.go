package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashClientKey returns a storage-safe identifier for a client network address.
func HashClientKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

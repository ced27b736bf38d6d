package utils

import (
	"crypto/rand"     // Cryptographically secure randomness
	"encoding/hex"    // Hex encoding of the random bytes
)

// GenerateTokenKey returns a random 40-character hex string used as an
// opaque bearer token key.
func GenerateTokenKey() (string, error) {
	b := make([]byte, 20) // 20 random bytes -> 40 hex characters
	if _, err := rand.Read(b); err != nil {
		return "", err // Return error if the system RNG fails
	}
	return hex.EncodeToString(b), nil // Encode to hex
}

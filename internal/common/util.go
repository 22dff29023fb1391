package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString draws size bytes from crypto/rand and returns them hex
// encoded, so the result is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray zeroes b in place. Used to clear password bytes once they
// are no longer needed. Accepts nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

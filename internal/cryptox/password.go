// Package cryptox implements the credential engine: salted PBKDF2 password
// hashing and constant-time verification. Hashes and salts travel as hex
// strings, never as plaintext passwords.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/common"
)

const (
	// saltBytes random bytes per salt; the stored hex form is 32 characters.
	saltBytes = 16

	// iterations is the PBKDF2 work factor. High enough to resist offline
	// brute force, bounded so interactive logins stay responsive.
	iterations = 100_000

	keyBytes = 32
)

// NewSalt returns a fresh hex-encoded random salt.
func NewSalt() (string, error) {
	return common.MakeRandHexString(saltBytes)
}

// HashPassword derives a hex-encoded key from the UTF-8 encodings of the
// password and salt using PBKDF2-HMAC-SHA256. If salt is empty, a new
// random salt is generated. The salt actually used is returned alongside
// the derived key.
func HashPassword(password, salt string) (usedSalt, hash string, err error) {
	if salt == "" {
		salt, err = NewSalt()
		if err != nil {
			return "", "", err
		}
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha256.New)
	return salt, hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the hash of candidate with storedSalt and
// compares it with storedHash in constant time. It returns false on any
// mismatch and has no error path.
func VerifyPassword(storedHash, storedSalt, candidate string) bool {
	_, hash, err := HashPassword(candidate, storedSalt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(hash), []byte(storedHash)) == 1
}

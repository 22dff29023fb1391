// Package models holds the persisted data types shared by repositories and
// services.
package models

import "time"

// User is an account in the user directory. PasswordHash and Salt carry the
// hex-encoded PBKDF2 output; the plaintext password is never stored.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}

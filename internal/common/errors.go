// Package common defines shared constants and sentinel errors used across
// the chatbot layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrorInvalidCredentials covers both an unknown username and a wrong
	// password, so callers cannot tell which check failed.
	ErrorInvalidCredentials = errors.New("invalid username or password")
)

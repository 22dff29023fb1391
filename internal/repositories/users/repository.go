// Package users persists chatbot accounts.
package users

import (
	"context"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

// Repository describes persistence operations for users. Implementations
// are bound to a dbx.DBTX, so the same code runs standalone or inside a
// transaction opened by dbx.WithTx.
type Repository interface {
	// Create inserts a new user row. A username collision yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername finds a user by exact, case-sensitive username.
	// Returns common.ErrorNotFound when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}

// Package services contains the application's business logic. This file
// implements UserService, which handles registration and credential checks.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/common"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/cryptox"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/dbx"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/repositories/repomanager"
)

// UserService provides account operations:
// - Register: create users with a salted password hash
// - Authenticate: verify credentials and return the user's id
// - Count: number of registered accounts (drives first-run setup)
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService on top of the repository manager.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new account. The password is hashed with a fresh random
// salt before it reaches storage. A taken username yields ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	salt, hash, err := cryptox.HashPassword(password, "")
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Users(tx).Create(ctx, user)
	}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the username/password pair and returns the matching
// user. Unknown usernames and wrong passwords both yield
// ErrorInvalidCredentials; a hash is derived either way so the two cases take
// comparable time.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnHash(password)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(user.PasswordHash, user.Salt, password) {
		return nil, common.ErrorInvalidCredentials
	}
	return user, nil
}

// Count returns the number of registered accounts.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.repomanager.Users(s.db).Count(ctx)
}

// burnHash derives a throwaway hash so a lookup miss costs about the same as
// a verification.
func (s *UserService) burnHash(password string) {
	_, _, _ = cryptox.HashPassword(password, "")
}

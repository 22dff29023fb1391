package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/common"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  username TEXT UNIQUE NOT NULL,
  password_hash TEXT NOT NULL,
  salt TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`)
	require.NoError(t, err)

	return db
}

func newUser(username string) *models.User {
	return &models.User{
		ID:           "id-" + username,
		Username:     username,
		PasswordHash: "deadbeef",
		Salt:         "cafe",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestCreate_And_GetByUsername(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newUser("alice")))

	got, err := r.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "id-alice", got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "deadbeef", got.PasswordHash)
	assert.Equal(t, "cafe", got.Salt)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreate_DuplicateUsername(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newUser("alice")))

	dup := newUser("alice")
	dup.ID = "id-other"
	err := r.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorAlreadyExists), "unique violation must map to ErrorAlreadyExists")
}

func TestGetByUsername_NotFoundAndCaseSensitive(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newUser("alice")))

	_, err := r.GetByUsername(ctx, "bob")
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	// lookup is exact-match, no normalization
	_, err = r.GetByUsername(ctx, "Alice")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestCount(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	require.NoError(t, r.Create(ctx, newUser("alice")))
	require.NoError(t, r.Create(ctx, newUser("bob")))

	n, err = r.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

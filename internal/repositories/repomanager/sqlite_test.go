package repomanager

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

func TestOpen_SQLiteRunsMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, m, err := Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// migrated schema accepts writes through the vended repositories
	users := m.Users(db)
	require.NoError(t, users.Create(ctx, &models.User{
		ID:           "u1",
		Username:     "alice",
		PasswordHash: "deadbeef",
		Salt:         "cafe",
		CreatedAt:    time.Now().UTC(),
	}))

	convs := m.Conversations(db)
	require.NoError(t, convs.Create(ctx, &models.Conversation{
		ID:        "c1",
		SessionID: "s1",
		UserID:    "u1",
		ModelUsed: "gemini",
		CreatedAt: time.Now().UTC(),
	}))

	got, err := convs.FindCurrent(ctx, "s1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
}

func TestOpen_SQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, _, err := Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// a second open against the same file must not fail on applied migrations
	db, _, err = Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, _, err := Open(context.Background(), "mysql", "dsn")
	assert.Error(t, err)
}

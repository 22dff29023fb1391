// Package repomanager vends backend-specific repository implementations and
// wires schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/dbx"
	sqlitemigrations "github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/migrations/sqlite"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/repositories/conversations"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/repositories/users"
)

// SQLiteRepositoryManager vends SQLite-backed repository implementations and
// exposes a schema migration hook.
type SQLiteRepositoryManager struct{}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Conversations returns a conversations.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Conversations(db dbx.DBTX) conversations.Repository {
	return conversations.NewSQLiteRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(sqlitemigrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

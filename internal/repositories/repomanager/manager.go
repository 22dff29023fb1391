package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/dbx"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/repositories/conversations"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Conversations(db dbx.DBTX) conversations.Repository
}

// Open connects to the configured database, runs migrations and returns the
// connection together with the matching RepositoryManager. driver is either
// "sqlite" or "postgres".
func Open(ctx context.Context, driver string, dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		manager    RepositoryManager
		driverName string
	)

	switch driver {
	case "sqlite":
		manager = NewSQLiteRepositoryManager()
		driverName = "sqlite"
	case "postgres":
		manager = NewPostgresRepositoryManager()
		driverName = "pgx"
	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := manager.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, manager, nil
}

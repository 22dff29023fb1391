package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/common"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/dbx"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, username, password_hash, salt, created_at)
			  VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Salt, user.CreatedAt)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password_hash, salt, created_at FROM users
			  WHERE username = ?`
	row := r.db.QueryRowContext(ctx, query, username)

	user := &models.User{}
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Salt, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return user, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func isSQLiteUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	// modernc reports the extended result code when available.
	return se.Code() == sqlitelib.SQLITE_CONSTRAINT_UNIQUE ||
		se.Code() == sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY ||
		se.Code() == sqlitelib.SQLITE_CONSTRAINT
}

package conversations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/common"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/dbx"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

// PostgresRepository implements Repository on PostgreSQL via the pgx stdlib
// driver.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a new PostgresRepository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindCurrent(ctx context.Context, sessionID, userID string) (*models.Conversation, error) {
	query := `SELECT id, session_id, user_id, model_used, summary, created_at FROM conversations
			  WHERE session_id = $1 AND user_id = $2
			  ORDER BY created_at DESC
			  LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, sessionID, userID)

	conv := &models.Conversation{}
	err := row.Scan(&conv.ID, &conv.SessionID, &conv.UserID, &conv.ModelUsed, &conv.Summary, &conv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select conversation: %w", err)
	}
	return conv, nil
}

func (r *PostgresRepository) Create(ctx context.Context, conv *models.Conversation) error {
	query := `INSERT INTO conversations (id, session_id, user_id, model_used, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		conv.ID, conv.SessionID, conv.UserID, conv.ModelUsed, conv.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}
	return nil
}

func (r *PostgresRepository) AddMessage(ctx context.Context, msg *models.Message) error {
	query := `INSERT INTO messages (id, conversation_id, role, content, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.ConversationID, msg.Role, msg.Content, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListRecent(ctx context.Context, sessionID, userID string, limit int, modelFilter string) ([]models.Conversation, error) {
	query := `SELECT id, session_id, user_id, model_used, summary, created_at FROM conversations
			  WHERE session_id = $1 AND user_id = $2
			  ORDER BY created_at DESC
			  LIMIT $3`
	args := []any{sessionID, userID, limit}
	if modelFilter != "" {
		query = `SELECT id, session_id, user_id, model_used, summary, created_at FROM conversations
				 WHERE session_id = $1 AND user_id = $2 AND model_used = $3
				 ORDER BY created_at DESC
				 LIMIT $4`
		args = []any{sessionID, userID, modelFilter, limit}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select conversations: %w", err)
	}
	defer rows.Close()

	var result []models.Conversation
	for rows.Next() {
		var c models.Conversation
		if err := rows.Scan(&c.ID, &c.SessionID, &c.UserID, &c.ModelUsed, &c.Summary, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	query := `SELECT id, conversation_id, role, content, created_at FROM messages
			  WHERE conversation_id = $1
			  ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}
	defer rows.Close()

	var result []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Owned(ctx context.Context, conversationID, sessionID, userID string) (bool, error) {
	query := `SELECT 1 FROM conversations WHERE id = $1 AND session_id = $2 AND user_id = $3`
	var one int
	err := r.db.QueryRowContext(ctx, query, conversationID, sessionID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check conversation ownership: %w", err)
	}
	return true, nil
}

func (r *PostgresRepository) SetSummary(ctx context.Context, conversationID, summary string) error {
	query := `UPDATE conversations SET summary = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, summary, conversationID); err != nil {
		return fmt.Errorf("failed to update summary: %w", err)
	}
	return nil
}

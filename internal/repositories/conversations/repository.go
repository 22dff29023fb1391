// Package conversations persists conversations and their messages.
package conversations

import (
	"context"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

// Repository describes persistence operations for conversations and
// messages. Implementations are bound to a dbx.DBTX, so the same code runs
// standalone or inside a transaction opened by dbx.WithTx.
//
// Conversation identity is (session_id, user_id) plus recency; model_used
// never participates in lookups.
type Repository interface {
	// FindCurrent returns the most recently created conversation for the
	// (sessionID, userID) pair. Returns common.ErrorNotFound when the pair
	// has no conversations yet.
	FindCurrent(ctx context.Context, sessionID, userID string) (*models.Conversation, error)

	// Create inserts a new conversation row.
	Create(ctx context.Context, conv *models.Conversation) error

	// AddMessage appends a message row to its conversation.
	AddMessage(ctx context.Context, msg *models.Message) error

	// ListRecent returns up to limit conversations for the pair, newest
	// first. A non-empty modelFilter restricts the result to conversations
	// created under that model.
	ListRecent(ctx context.Context, sessionID, userID string, limit int, modelFilter string) ([]models.Conversation, error)

	// ListMessages returns a conversation's messages, oldest first.
	ListMessages(ctx context.Context, conversationID string) ([]models.Message, error)

	// Owned reports whether the conversation id exists for the pair.
	Owned(ctx context.Context, conversationID, sessionID, userID string) (bool, error)

	// SetSummary stores the summary text on a conversation.
	SetSummary(ctx context.Context, conversationID, summary string) error
}

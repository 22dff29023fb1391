package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/common"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/dbx"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/logging"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/repositories/repomanager"
)

// DefaultRecallLimit caps how many past conversations recall operations
// return when the caller does not override it.
const DefaultRecallLimit = 5

// ConversationService manages conversation lookup, message persistence and
// summaries. A conversation is identified by its (session, user) pair; the
// model in use never affects which conversation a message lands in.
type ConversationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

// NewConversationService constructs a ConversationService.
func NewConversationService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ConversationService {
	return &ConversationService{db: db, repomanager: m, logger: logger}
}

// AppendMessage stores one message on the current conversation for the
// (sessionID, userID) pair, creating the conversation first when the pair has
// none. Lookup and insert run in one transaction. Returns the conversation id
// the message landed in.
func (s *ConversationService) AppendMessage(ctx context.Context, sessionID, userID, model, role, content string) (string, error) {
	var convID string

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Conversations(tx)

		conv, err := repo.FindCurrent(ctx, sessionID, userID)
		if err != nil {
			if !errors.Is(err, common.ErrorNotFound) {
				return err
			}
			conv = &models.Conversation{
				ID:        uuid.NewString(),
				SessionID: sessionID,
				UserID:    userID,
				ModelUsed: model,
				CreatedAt: time.Now().UTC(),
			}
			if err := repo.Create(ctx, conv); err != nil {
				return err
			}
			s.logger.Debug(ctx, "started new conversation",
				"conversation_id", conv.ID, "session_id", sessionID)
		}

		msg := &models.Message{
			ID:             uuid.NewString(),
			ConversationID: conv.ID,
			Role:           role,
			Content:        content,
			CreatedAt:      time.Now().UTC(),
		}
		if err := repo.AddMessage(ctx, msg); err != nil {
			return err
		}

		convID = conv.ID
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error appending message: %w", err)
	}
	return convID, nil
}

// RecentConversations returns up to limit of the pair's most recent
// conversations, newest first, each with its messages oldest first. A
// non-empty modelFilter keeps only conversations created under that model.
// No matches is not an error; the result is just empty.
func (s *ConversationService) RecentConversations(ctx context.Context, sessionID, userID string, limit int, modelFilter string) ([]models.ConversationView, error) {
	if limit <= 0 {
		limit = DefaultRecallLimit
	}

	repo := s.repomanager.Conversations(s.db)
	convs, err := repo.ListRecent(ctx, sessionID, userID, limit, modelFilter)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}

	views := make([]models.ConversationView, 0, len(convs))
	for _, c := range convs {
		msgs, err := repo.ListMessages(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("error listing messages: %w", err)
		}
		views = append(views, models.ConversationView{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			ModelUsed: c.ModelUsed,
			Messages:  msgs,
		})
	}
	return views, nil
}

// AttachSummary stores summary on the conversation, but only when the
// conversation belongs to the (sessionID, userID) pair. A mismatch leaves the
// row untouched and is not an error.
func (s *ConversationService) AttachSummary(ctx context.Context, conversationID, sessionID, userID, summary string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Conversations(tx)

		owned, err := repo.Owned(ctx, conversationID, sessionID, userID)
		if err != nil {
			return fmt.Errorf("error checking conversation ownership: %w", err)
		}
		if !owned {
			s.logger.Warn(ctx, "summary skipped, conversation not owned by caller",
				"conversation_id", conversationID)
			return nil
		}
		return repo.SetSummary(ctx, conversationID, summary)
	})
}

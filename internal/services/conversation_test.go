package services

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/logging"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAppendMessage_LogsNewConversation(t *testing.T) {
	db, m := setupDB(t)

	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s := NewConversationService(db, m, logger)
	ctx := context.Background()

	id, err := s.AppendMessage(ctx, "s1", "u1", "gemini", models.RoleUser, "hi")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "started new conversation")
	assert.Contains(t, buf.String(), id)

	// appending to the existing conversation stays quiet
	buf.Reset()
	_, err = s.AppendMessage(ctx, "s1", "u1", "gemini", models.RoleAssistant, "hello")
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestAppendMessage_CreatesThenReuses(t *testing.T) {
	db, m := setupDB(t)
	s := NewConversationService(db, m, testLogger())
	ctx := context.Background()

	id1, err := s.AppendMessage(ctx, "s1", "u1", "gemini", models.RoleUser, "hi")
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	// switching models must not fork the conversation
	id2, err := s.AppendMessage(ctx, "s1", "u1", "gpt", models.RoleAssistant, "hello")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	// a different session gets its own conversation
	id3, err := s.AppendMessage(ctx, "s2", "u1", "gemini", models.RoleUser, "hey")
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}

func TestAppendMessage_PreservesOrder(t *testing.T) {
	db, m := setupDB(t)
	s := NewConversationService(db, m, testLogger())
	ctx := context.Background()

	for _, turn := range []struct{ role, content string }{
		{models.RoleUser, "hi"},
		{models.RoleAssistant, "hello"},
		{models.RoleUser, "how are you"},
	} {
		_, err := s.AppendMessage(ctx, "s1", "u1", "gemini", turn.role, turn.content)
		require.NoError(t, err)
	}

	views, err := s.RecentConversations(ctx, "s1", "u1", 0, "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Messages, 3)
	assert.Equal(t, "hi", views[0].Messages[0].Content)
	assert.Equal(t, "hello", views[0].Messages[1].Content)
	assert.Equal(t, "how are you", views[0].Messages[2].Content)
}

func TestRecentConversations_LimitAndFilter(t *testing.T) {
	db, m := setupDB(t)
	s := NewConversationService(db, m, testLogger())
	ctx := context.Background()

	// three sessions, three conversations, alternating models
	_, err := s.AppendMessage(ctx, "s1", "u1", "gemini", models.RoleUser, "a")
	require.NoError(t, err)
	_, err = s.AppendMessage(ctx, "s2", "u1", "gpt", models.RoleUser, "b")
	require.NoError(t, err)
	id3, err := s.AppendMessage(ctx, "s3", "u1", "gemini", models.RoleUser, "c")
	require.NoError(t, err)

	// recall is scoped to one session
	views, err := s.RecentConversations(ctx, "s3", "u1", 1, "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, id3, views[0].ID)

	views, err = s.RecentConversations(ctx, "s3", "u1", 5, "gpt")
	require.NoError(t, err)
	assert.Empty(t, views)

	views, err = s.RecentConversations(ctx, "s2", "u1", 5, "gpt")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "gpt", views[0].ModelUsed)
}

func TestRecentConversations_EmptyIsNotAnError(t *testing.T) {
	db, m := setupDB(t)
	s := NewConversationService(db, m, testLogger())

	views, err := s.RecentConversations(context.Background(), "nosuch", "u1", 0, "")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestAttachSummary(t *testing.T) {
	db, m := setupDB(t)
	s := NewConversationService(db, m, testLogger())
	ctx := context.Background()

	id, err := s.AppendMessage(ctx, "s1", "u1", "gemini", models.RoleUser, "hi")
	require.NoError(t, err)

	require.NoError(t, s.AttachSummary(ctx, id, "s1", "u1", "short chat"))

	views, err := s.RecentConversations(ctx, "s1", "u1", 0, "")
	require.NoError(t, err)
	require.Len(t, views, 1)

	conv, err := m.Conversations(db).FindCurrent(ctx, "s1", "u1")
	require.NoError(t, err)
	require.True(t, conv.Summary.Valid)
	assert.Equal(t, "short chat", conv.Summary.String)

	// repeating the same attach leaves the stored summary unchanged
	require.NoError(t, s.AttachSummary(ctx, id, "s1", "u1", "short chat"))

	conv, err = m.Conversations(db).FindCurrent(ctx, "s1", "u1")
	require.NoError(t, err)
	require.True(t, conv.Summary.Valid)
	assert.Equal(t, "short chat", conv.Summary.String)
}

func TestAttachSummary_ForeignScopeIsNoop(t *testing.T) {
	db, m := setupDB(t)
	s := NewConversationService(db, m, testLogger())
	ctx := context.Background()

	id, err := s.AppendMessage(ctx, "s1", "u1", "gemini", models.RoleUser, "hi")
	require.NoError(t, err)

	// a caller with a different session or user cannot touch the row
	require.NoError(t, s.AttachSummary(ctx, id, "other-session", "u1", "sneaky"))
	require.NoError(t, s.AttachSummary(ctx, id, "s1", "other-user", "sneaky"))

	conv, err := m.Conversations(db).FindCurrent(ctx, "s1", "u1")
	require.NoError(t, err)
	assert.False(t, conv.Summary.Valid)
}

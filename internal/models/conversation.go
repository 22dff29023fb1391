package models

import (
	"database/sql"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation groups the messages exchanged within one session window for
// one user. ModelUsed records the model that was active when the
// conversation was created; lookups deliberately ignore it, so a mid-session
// model switch keeps appending to the same conversation.
type Conversation struct {
	ID        string
	SessionID string
	UserID    string
	ModelUsed string
	Summary   sql.NullString
	CreatedAt time.Time
}

// Message is a single turn inside a conversation. Messages are totally
// ordered by CreatedAt, assigned at write time.
type Message struct {
	ID             string
	ConversationID string
	Role           string
	Content        string
	CreatedAt      time.Time
}

// ConversationView is a conversation together with its messages in
// chronological (oldest-first) order, as returned by recall queries.
type ConversationView struct {
	ID        string
	CreatedAt time.Time
	ModelUsed string
	Messages  []Message
}

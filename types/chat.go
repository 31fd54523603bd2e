package types

import (
	"time"
)

type Message struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Sender    string    `json:"sender"` // "user" or "ai"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	SessionID string    `json:"session_id"`
}

// FromAI reports whether the message was written by the assistant.
func (m Message) FromAI() bool {
	return m.Sender == "ai"
}

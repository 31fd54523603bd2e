package types

import "time"

// Session is a chat session as stored by the ai-helper backend.
type Session struct {
	ID        string     `json:"id,omitempty"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// DisplayTitle falls back to the session id when the backend has not titled it yet.
func (s Session) DisplayTitle() string {
	if s.Title == "" {
		return s.ID
	}
	return s.Title
}

package supabase

import (
	"clementus360/ai-helper-web/types"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

// GetMessages returns a session's messages in chronological order.
func (s *Store) GetMessages(id types.Identity, sessionID string) ([]types.Message, error) {
	if id.Anonymous() {
		return nil, fmt.Errorf("missing user ID")
	}

	client, err := s.clientFor(id)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	resp, _, err := client.From("messages").
		Select("id, sender, content, created_at, session_id", "", false).
		Eq("user_id", id.UserID).
		Eq("session_id", sessionID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []types.Message
	if err := json.Unmarshal(resp, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	return messages, nil
}

// SaveMessage appends a message to a session. sender is "user" or "ai".
func (s *Store) SaveMessage(id types.Identity, sessionID, sender, content string) error {
	if id.Anonymous() {
		return fmt.Errorf("missing user ID")
	}

	client, err := s.clientFor(id)
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	// created_at is left to the database default
	message := map[string]string{
		"user_id":    id.UserID,
		"session_id": sessionID,
		"sender":     sender,
		"content":    content,
	}

	_, _, err = client.From("messages").Insert(message, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

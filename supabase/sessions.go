package supabase

import (
	"clementus360/ai-helper-web/types"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

// GetSessions returns the caller's sessions, newest first. limit <= 0 means all.
func (s *Store) GetSessions(id types.Identity, limit int) ([]types.Session, error) {
	if id.Anonymous() {
		return nil, fmt.Errorf("missing user ID")
	}

	client, err := s.clientFor(id)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	query := client.From("sessions").
		Select("id, user_id, title, created_at", "", false).
		Eq("user_id", id.UserID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})
	if limit > 0 {
		query = query.Limit(limit, "")
	}

	resp, _, err := query.Execute()
	if err != nil {
		return nil, err
	}

	var sessions []types.Session
	if err := json.Unmarshal(resp, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode session data: %w", err)
	}

	return sessions, nil
}

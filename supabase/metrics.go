package supabase

import (
	"clementus360/ai-helper-web/types"
	"encoding/json"
	"fmt"
)

// GetSessionMetrics returns the counters the backend keeps for a session.
// found is false when the backend has not recorded any yet.
func (s *Store) GetSessionMetrics(id types.Identity, sessionID string) (metrics types.SessionMetrics, found bool, err error) {
	if id.Anonymous() {
		return types.SessionMetrics{}, false, fmt.Errorf("missing user ID")
	}

	client, err := s.clientFor(id)
	if err != nil {
		return types.SessionMetrics{}, false, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	resp, _, err := client.From("session_metrics").
		Select("*", "", false).
		Eq("session_id", sessionID).
		Eq("user_id", id.UserID).
		Execute()
	if err != nil {
		return types.SessionMetrics{}, false, fmt.Errorf("failed to fetch session metrics: %w", err)
	}

	var rows []types.SessionMetrics
	if err := json.Unmarshal(resp, &rows); err != nil {
		return types.SessionMetrics{}, false, fmt.Errorf("failed to unmarshal metrics: %w", err)
	}

	if len(rows) == 0 {
		return types.SessionMetrics{}, false, nil
	}
	return rows[0], true, nil
}

package supabase

import (
	"clementus360/ai-helper-web/types"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

// GetTasks returns the caller's pending tasks, most recent first.
func (s *Store) GetTasks(id types.Identity, limit int) ([]types.Task, error) {
	if id.Anonymous() {
		return nil, fmt.Errorf("missing user ID")
	}

	client, err := s.clientFor(id)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	query := client.From("tasks").
		Select("*", "", false).
		Eq("user_id", id.UserID).
		Eq("status", types.TaskStatusPending).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})
	if limit > 0 {
		query = query.Limit(limit, "")
	}

	resp, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	return tasks, nil
}

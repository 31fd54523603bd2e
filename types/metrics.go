package types

import "time"

type SessionMetrics struct {
	SessionID           string    `json:"session_id"`
	UserID              string    `json:"user_id"`
	MessageCount        int       `json:"message_count"`
	TasksCreated        int       `json:"tasks_created"`
	TasksCompleted      int       `json:"tasks_completed"`
	LastActiveAt        time.Time `json:"last_active_at"`
	UserEngagementLevel string    `json:"engagement_level"` // "low", "medium", "high"
}

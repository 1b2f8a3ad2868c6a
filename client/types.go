package client

import (
	"time"

	"github.com/ayoisaiah/deepwork/models"
)

// HistoryEntry is a session as returned by the history endpoint, together
// with its computed metrics.
type HistoryEntry struct {
	StartTime         *time.Time    `json:"start_time"`
	EndTime           *time.Time    `json:"end_time"`
	Goal              *string       `json:"goal"`
	ActualDuration    *float64      `json:"actual_duration"`
	CompletionRatio   *float64      `json:"completion_ratio"`
	FocusScore        *float64      `json:"focus_score"`
	CreatedAt         time.Time     `json:"created_at"`
	Title             string        `json:"title"`
	Status            models.Status `json:"status"`
	ID                int64         `json:"id"`
	ScheduledDuration int           `json:"scheduled_duration"`
	PauseCount        int           `json:"pause_count"`
}

// WeeklyReport holds the session counts of one ISO week.
type WeeklyReport struct {
	Week                string `json:"week"`
	TotalSessions       int    `json:"total_sessions"`
	CompletedSessions   int    `json:"completed_sessions"`
	OverdueSessions     int    `json:"overdue_sessions"`
	InterruptedSessions int    `json:"interrupted_sessions"`
}

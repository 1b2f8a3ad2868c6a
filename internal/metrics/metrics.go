// Package metrics derives durations, focus scores and weekly counts from
// stored sessions.
package metrics

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/ayoisaiah/deepwork/internal/timeutil"
	"github.com/ayoisaiah/deepwork/models"
)

// Source is the read-only view of the store that metrics need.
type Source interface {
	ListSessions() ([]*models.Session, error)
	CountInterruptions(sessionID int64) (int, error)
}

// SessionMetrics holds the values derived for one session. Nil fields could
// not be computed.
type SessionMetrics struct {
	ActualDuration  *float64 `json:"actual_duration"`
	CompletionRatio *float64 `json:"completion_ratio"`
	FocusScore      *float64 `json:"focus_score"`
	PauseCount      int      `json:"pause_count"`
}

// HistoryEntry is a session together with its metrics.
type HistoryEntry struct {
	StartTime         *time.Time    `json:"start_time"`
	EndTime           *time.Time    `json:"end_time"`
	Goal              *string       `json:"goal"`
	CreatedAt         time.Time     `json:"created_at"`
	Title             string        `json:"title"`
	Status            models.Status `json:"status"`
	ID                int64         `json:"id"`
	ScheduledDuration int           `json:"scheduled_duration"`
	SessionMetrics
}

// WeeklyReport counts the sessions created in one ISO week.
type WeeklyReport struct {
	Week                string `json:"week"`
	TotalSessions       int    `json:"total_sessions"`
	CompletedSessions   int    `json:"completed_sessions"`
	OverdueSessions     int    `json:"overdue_sessions"`
	InterruptedSessions int    `json:"interrupted_sessions"`
}

// Filter restricts which sessions are reported. Zero values match
// everything.
type Filter struct {
	Since    time.Time
	Until    time.Time
	Statuses []models.Status
}

func (f Filter) match(sess *models.Session) bool {
	if !f.Since.IsZero() && sess.CreatedAt.Before(f.Since) {
		return false
	}

	if !f.Until.IsZero() && sess.CreatedAt.After(f.Until) {
		return false
	}

	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, sess.Status) {
		return false
	}

	return true
}

// ForSession computes the metrics of sess given its total pause count.
//
// The focus score is not clamped: it drops below zero once pauses exceed
// the scheduled minutes.
func ForSession(sess *models.Session, pauseCount int) SessionMetrics {
	m := SessionMetrics{
		PauseCount: pauseCount,
	}

	scheduled := float64(sess.ScheduledDuration)

	if elapsed, ok := sess.Elapsed(); ok {
		actual := timeutil.Minutes(elapsed)
		m.ActualDuration = &actual

		if sess.ScheduledDuration > 0 {
			ratio := timeutil.Round2(actual / scheduled)
			m.CompletionRatio = &ratio
		}
	}

	if sess.ScheduledDuration > 0 {
		score := timeutil.Round2((1 - float64(pauseCount)/scheduled) * 100)
		m.FocusScore = &score
	}

	return m
}

// History returns every session matching f with its metrics, ordered by id.
func History(src Source, f Filter) ([]HistoryEntry, error) {
	sessions, err := src.ListSessions()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(sessions, func(a, b *models.Session) int {
		return cmp.Compare(a.ID, b.ID)
	})

	history := make([]HistoryEntry, 0, len(sessions))

	for _, sess := range sessions {
		if !f.match(sess) {
			continue
		}

		count, err := src.CountInterruptions(sess.ID)
		if err != nil {
			return nil, fmt.Errorf("counting pauses of session %d: %w", sess.ID, err)
		}

		history = append(history, HistoryEntry{
			ID:                sess.ID,
			Title:             sess.Title,
			Goal:              sess.Goal,
			ScheduledDuration: sess.ScheduledDuration,
			Status:            sess.Status,
			StartTime:         sess.StartTime,
			EndTime:           sess.EndTime,
			CreatedAt:         sess.CreatedAt,
			SessionMetrics:    ForSession(sess, count),
		})
	}

	return history, nil
}

// Weekly reports the sessions created during the current ISO week. The
// result always holds exactly one element, even when no session matches.
func Weekly(src Source, clock timeutil.Clock) ([]WeeklyReport, error) {
	sessions, err := src.ListSessions()
	if err != nil {
		return nil, err
	}

	now := clock.Now()

	report := WeeklyReport{
		Week: timeutil.WeekLabel(now),
	}

	for _, sess := range sessions {
		if !timeutil.SameISOWeek(sess.CreatedAt, now) {
			continue
		}

		report.TotalSessions++

		//nolint:exhaustive // other statuses are only counted in the total
		switch sess.Status {
		case models.StatusCompleted:
			report.CompletedSessions++
		case models.StatusOverdue:
			report.OverdueSessions++
		case models.StatusInterrupted:
			report.InterruptedSessions++
		}
	}

	return []WeeklyReport{report}, nil
}

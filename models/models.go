// Package models defines the records persisted by deepwork.
package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ayoisaiah/deepwork/internal/apperr"
)

// Status is the lifecycle state of a deep work session.
type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusActive      Status = "active"
	StatusPaused      Status = "paused"
	StatusInterrupted Status = "interrupted"
	StatusCompleted   Status = "completed"
	StatusOverdue     Status = "overdue"
)

// Statuses lists every known status in lifecycle order.
var Statuses = []Status{
	StatusScheduled,
	StatusActive,
	StatusPaused,
	StatusInterrupted,
	StatusCompleted,
	StatusOverdue,
}

var errUnknownStatus = &apperr.Error{
	Message: "unknown session status: %q",
	Kind:    apperr.ErrInvalidInput,
}

// transitions maps a status to the statuses it may move to.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusActive},
	StatusActive: {
		StatusPaused,
		StatusInterrupted,
		StatusCompleted,
		StatusOverdue,
	},
	StatusPaused: {StatusActive, StatusCompleted, StatusOverdue},
}

// ParseStatus converts s to a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))

	for _, v := range Statuses {
		if v == status {
			return status, nil
		}
	}

	return "", errUnknownStatus.Fmt(s)
}

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusOverdue || s == StatusInterrupted
}

// Started reports whether a session in this status has a start time.
func (s Status) Started() bool {
	return s != StatusScheduled
}

// Ended reports whether a session in this status has an end time.
func (s Status) Ended() bool {
	return s == StatusCompleted || s == StatusOverdue
}

// CanTransition reports whether a session may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, v := range transitions[from] {
		if v == to {
			return true
		}
	}

	return false
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var str string

	err := json.Unmarshal(b, &str)
	if err != nil {
		return err
	}

	status, err := ParseStatus(str)
	if err != nil {
		return err
	}

	*s = status

	return nil
}

// Session is a single deep work attempt.
type Session struct {
	StartTime         *time.Time `json:"start_time"`
	EndTime           *time.Time `json:"end_time"`
	Goal              *string    `json:"goal"`
	CreatedAt         time.Time  `json:"created_at"`
	Title             string     `json:"title"`
	Status            Status     `json:"status"`
	ID                int64      `json:"id"`
	ScheduledDuration int        `json:"scheduled_duration"` // minutes
}

// Elapsed returns the time between the start and end of the session. The
// second return value is false unless both are set.
func (s *Session) Elapsed() (time.Duration, bool) {
	if s.StartTime == nil || s.EndTime == nil {
		return 0, false
	}

	return s.EndTime.Sub(*s.StartTime), true
}

// Interruption records a single pause of a session.
type Interruption struct {
	PauseTime time.Time `json:"pause_time"`
	Reason    string    `json:"reason"`
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
}

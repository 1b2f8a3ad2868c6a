// Package session drives the lifecycle of deep work sessions: creation,
// start, pause, resume and completion.
package session

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ayoisaiah/deepwork/internal/timeutil"
	"github.com/ayoisaiah/deepwork/models"
	"github.com/ayoisaiah/deepwork/store"
)

const (
	// MaxPauses is the cumulative pause count at which a session is
	// marked as interrupted.
	MaxPauses = 4
	// OverdueFactor is the share of the scheduled duration a session may
	// run before it is considered overdue.
	OverdueFactor = 1.1
)

// Hook is notified after a session changes status.
type Hook interface {
	SessionChanged(sess *models.Session)
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(sess *models.Session)

func (f HookFunc) SessionChanged(sess *models.Session) {
	f(sess)
}

// Engine applies lifecycle operations to stored sessions.
type Engine struct {
	db    store.DB
	clock timeutil.Clock
	hooks []Hook
}

// Option configures an Engine.
type Option func(*Engine)

// WithHook registers h to be called after every successful transition.
func WithHook(h Hook) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, h)
	}
}

// New returns an Engine backed by db. A nil clock uses the system clock.
func New(db store.DB, clock timeutil.Clock, opts ...Option) *Engine {
	if clock == nil {
		clock = timeutil.SystemClock{}
	}

	e := &Engine{
		db:    db,
		clock: clock,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CreateParams holds the values for a new session.
type CreateParams struct {
	Goal              *string
	Title             string
	ScheduledDuration int
}

// Create schedules a new session.
func (e *Engine) Create(p CreateParams) (*models.Session, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, errEmptyTitle
	}

	if p.ScheduledDuration <= 0 {
		return nil, errInvalidDuration.Fmt(p.ScheduledDuration)
	}

	sess := &models.Session{
		Title:             title,
		Goal:              p.Goal,
		ScheduledDuration: p.ScheduledDuration,
		Status:            models.StatusScheduled,
		CreatedAt:         e.clock.Now(),
	}

	err := e.db.InsertSession(sess)
	if err != nil {
		return nil, fmt.Errorf("saving new session: %w", err)
	}

	slog.Info(
		"session created",
		slog.Int64("id", sess.ID),
		slog.String("title", sess.Title),
		slog.Int("scheduled_duration", sess.ScheduledDuration),
	)

	return sess, nil
}

// Get returns the session with the given id.
func (e *Engine) Get(id int64) (*models.Session, error) {
	sess, err := e.db.GetSession(id)
	if err != nil {
		return nil, err
	}

	if sess == nil {
		return nil, errSessionNotFound.Fmt(id)
	}

	return sess, nil
}

// Interruptions returns the pauses recorded for a session.
func (e *Engine) Interruptions(id int64) ([]*models.Interruption, error) {
	if _, err := e.Get(id); err != nil {
		return nil, err
	}

	return e.db.ListInterruptions(id)
}

// Start moves a scheduled session to active and records its start time.
func (e *Engine) Start(id int64) (*models.Session, error) {
	sess, err := e.Get(id)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.StatusScheduled {
		return nil, errAlreadyStarted
	}

	now := e.clock.Now()
	sess.StartTime = &now

	return e.transition(sess, models.StatusActive)
}

// Pause records an interruption for an active session. The session is
// paused, or interrupted once it has been paused MaxPauses times in total.
func (e *Engine) Pause(id int64, reason string) (*models.Session, error) {
	sess, err := e.Get(id)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.StatusActive {
		return nil, errNotActive
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errEmptyReason
	}

	count, err := e.db.CountInterruptions(sess.ID)
	if err != nil {
		return nil, fmt.Errorf("counting interruptions: %w", err)
	}

	count++

	next := models.StatusPaused
	if count >= MaxPauses {
		next = models.StatusInterrupted
	}

	in := &models.Interruption{
		SessionID: sess.ID,
		Reason:    reason,
		PauseTime: e.clock.Now(),
	}

	sess, err = e.apply(sess, next, func(s *models.Session) error {
		return e.db.PauseSession(s, in)
	})
	if err != nil {
		return nil, err
	}

	slog.Info(
		"interruption recorded",
		slog.Int64("id", sess.ID),
		slog.String("reason", reason),
		slog.Int("pause_count", count),
	)

	return sess, nil
}

// Resume moves a paused session back to active. The start time is kept, so
// paused intervals count towards the elapsed time.
func (e *Engine) Resume(id int64) (*models.Session, error) {
	sess, err := e.Get(id)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.StatusPaused {
		return nil, errNotPaused
	}

	return e.transition(sess, models.StatusActive)
}

// Complete ends an active or paused session. It is marked overdue when the
// elapsed minutes exceed the scheduled duration by more than ten percent.
func (e *Engine) Complete(id int64) (*models.Session, error) {
	sess, err := e.Get(id)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.StatusActive && sess.Status != models.StatusPaused {
		return nil, errCannotComplete
	}

	if sess.StartTime == nil {
		return nil, errNeverStarted
	}

	now := e.clock.Now()
	sess.EndTime = &now

	actual := timeutil.Minutes(now.Sub(*sess.StartTime))

	next := models.StatusCompleted
	if actual > float64(sess.ScheduledDuration)*OverdueFactor {
		next = models.StatusOverdue
	}

	return e.transition(sess, next)
}

// Delete removes a session and its interruptions.
func (e *Engine) Delete(id int64) error {
	if _, err := e.Get(id); err != nil {
		return err
	}

	err := e.db.DeleteSession(id)
	if err != nil {
		return err
	}

	slog.Info("session deleted", slog.Int64("id", id))

	return nil
}

// checkTimes enforces that start and end times are present exactly when
// the target status implies them.
func checkTimes(next models.Status, sess *models.Session) error {
	if next.Started() && sess.StartTime == nil {
		return errNeverStarted
	}

	if next.Ended() != (sess.EndTime != nil) {
		return errEndTime.Fmt(next)
	}

	return nil
}

// transition persists sess in status next and notifies the hooks.
func (e *Engine) transition(
	sess *models.Session,
	next models.Status,
) (*models.Session, error) {
	return e.apply(sess, next, e.db.UpdateSession)
}

// apply moves sess to next, stores it with save and notifies the hooks.
// sess is left untouched when the transition is rejected or save fails.
func (e *Engine) apply(
	sess *models.Session,
	next models.Status,
	save func(*models.Session) error,
) (*models.Session, error) {
	prev := sess.Status

	if !models.CanTransition(prev, next) {
		return nil, errInvalidTransition.Fmt(prev, next)
	}

	if err := checkTimes(next, sess); err != nil {
		return nil, err
	}

	updated := *sess
	updated.Status = next

	err := save(&updated)
	if err != nil {
		return nil, fmt.Errorf("saving session %d: %w", sess.ID, err)
	}

	*sess = updated

	slog.Info(
		"session "+string(next),
		slog.Int64("id", sess.ID),
		slog.String("from", string(prev)),
	)

	for _, h := range e.hooks {
		h.SessionChanged(sess)
	}

	return sess, nil
}

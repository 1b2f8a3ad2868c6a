package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/deepwork/internal/apperr"
	"github.com/ayoisaiah/deepwork/internal/session"
	"github.com/ayoisaiah/deepwork/internal/timeutil"
	"github.com/ayoisaiah/deepwork/models"
	"github.com/ayoisaiah/deepwork/store"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func setup(t *testing.T) (*Model, *session.Engine, *timeutil.FixedClock) {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "deepwork.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	clock := &timeutil.FixedClock{
		T: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
	}

	engine := session.New(db, clock)

	sess, err := engine.Create(session.CreateParams{
		Title:             "Write report",
		ScheduledDuration: 10,
	})
	require.NoError(t, err)

	_, err = engine.Start(sess.ID)
	require.NoError(t, err)

	m, err := New(engine, clock, sess.ID, true)
	require.NoError(t, err)

	return m, engine, clock
}

func TestWatchKeys(t *testing.T) {
	m, engine, clock := setup(t)

	clock.Advance(2 * time.Minute)
	m.Update(keyPress('p'))

	require.NoError(t, m.err)
	assert.Equal(t, models.StatusPaused, m.Session().Status)
	assert.Equal(t, 1, m.pauses)

	in, err := engine.Interruptions(m.Session().ID)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, PauseReason, in[0].Reason)

	m.Update(keyPress('r'))
	assert.Equal(t, models.StatusActive, m.Session().Status)

	clock.Advance(5 * time.Minute)
	m.Update(keyPress('c'))
	assert.Equal(t, models.StatusCompleted, m.Session().Status)

	_, cmd := m.Update(tickMsg(clock.Now()))
	assert.Nil(t, cmd)
}

func TestWatchShowsTransitionErrors(t *testing.T) {
	m, _, _ := setup(t)

	m.Update(keyPress('r'))

	assert.ErrorIs(t, m.err, apperr.ErrInvalidTransition)
	assert.Equal(t, models.StatusActive, m.Session().Status)
	assert.Contains(t, m.View(), "session is not paused")
}

func TestWatchView(t *testing.T) {
	m, _, clock := setup(t)

	clock.Advance(5 * time.Minute)

	view := m.View()
	assert.Contains(t, view, "Write report")
	assert.Contains(t, view, "05:00 / 10 min")
	assert.Contains(t, view, "pauses 0/4")
	assert.NotContains(t, view, "overdue threshold")

	clock.Advance(7 * time.Minute)
	assert.Contains(t, m.View(), "overdue threshold")
	assert.InDelta(t, 1.0, m.percent(), 0.0001)
}

func TestWatchQuit(t *testing.T) {
	m, _, _ := setup(t)

	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

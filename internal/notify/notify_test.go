package notify

import (
	"errors"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/deepwork/internal/apperr"
	"github.com/ayoisaiah/deepwork/models"
)

type recorder struct {
	titles []string
	cmds   [][]string
}

func newTestNotifier(t *testing.T, enabled bool, cmd string) (*Notifier, *recorder) {
	t.Helper()

	n, err := New(enabled, cmd)
	require.NoError(t, err)

	rec := &recorder{}

	n.notify = func(title, _, _ string) error {
		rec.titles = append(rec.titles, title)
		return nil
	}

	n.run = func(name string, args ...string) error {
		rec.cmds = append(rec.cmds, append([]string{name}, args...))
		return errors.New("exit status 1")
	}

	return n, rec
}

func TestSessionChanged(t *testing.T) {
	n, rec := newTestNotifier(t, true, `notify-send "deep work" done`)

	n.SessionChanged(&models.Session{ID: 1, Status: models.StatusActive})
	n.SessionChanged(&models.Session{ID: 1, Status: models.StatusPaused})
	assert.Empty(t, rec.titles)
	assert.Empty(t, rec.cmds)

	n.SessionChanged(&models.Session{ID: 1, Status: models.StatusOverdue})

	assert.Equal(t, []string{"Session overdue"}, rec.titles)
	assert.Equal(t, [][]string{{"notify-send", "deep work", "done"}}, rec.cmds)
}

func TestSessionChangedDisabled(t *testing.T) {
	n, rec := newTestNotifier(t, false, "")

	n.SessionChanged(&models.Session{ID: 2, Status: models.StatusCompleted})

	assert.Empty(t, rec.titles)
	assert.Empty(t, rec.cmds)
}

func TestNewRejectsUnbalancedQuotes(t *testing.T) {
	_, err := New(true, `echo "unterminated`)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestMessage(t *testing.T) {
	title, body := Message(&models.Session{
		Title:             "Refactor parser",
		Status:            models.StatusInterrupted,
		ScheduledDuration: 45,
	})

	assert.Equal(t, "Session interrupted", title)
	assert.Equal(t, "Refactor parser (45 min scheduled)", body)
}

func TestSessionCommandDoesNotBlock(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sleep(1)")
	}

	n, err := New(false, "sleep 5")
	require.NoError(t, err)

	start := time.Now()

	n.SessionChanged(&models.Session{ID: 3, Status: models.StatusCompleted})

	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSessionCommandStartFailure(t *testing.T) {
	n, err := New(false, "deepwork-no-such-command --flag")
	require.NoError(t, err)

	err = n.run(n.cmd[0], n.cmd[1:]...)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

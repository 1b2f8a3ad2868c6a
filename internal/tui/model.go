// Package tui implements the live view of a running session.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/deepwork/internal/timeutil"
	"github.com/ayoisaiah/deepwork/models"
)

// PauseReason is recorded for pauses made from the watch view.
const PauseReason = "paused from watch"

// Controller is the subset of the session engine the view drives.
type Controller interface {
	Get(id int64) (*models.Session, error)
	Interruptions(id int64) ([]*models.Interruption, error)
	Pause(id int64, reason string) (*models.Session, error)
	Resume(id int64) (*models.Session, error)
	Complete(id int64) (*models.Session, error)
}

type tickMsg time.Time

// Model is the bubbletea model for `deepwork watch`.
type Model struct {
	ctrl     Controller
	clock    timeutil.Clock
	sess     *models.Session
	err      error
	style    Style
	help     help.Model
	progress progress.Model
	pauses   int
}

// New loads session id and returns a model ready to be run.
func New(
	ctrl Controller,
	clock timeutil.Clock,
	id int64,
	darkTheme bool,
) (*Model, error) {
	if clock == nil {
		clock = timeutil.SystemClock{}
	}

	m := &Model{
		ctrl:     ctrl,
		clock:    clock,
		style:    NewStyle(darkTheme),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}

	sess, err := ctrl.Get(id)
	if err != nil {
		return nil, err
	}

	if err := m.load(sess); err != nil {
		return nil, err
	}

	return m, nil
}

// Session returns the last known state of the watched session.
func (m *Model) Session() *models.Session {
	return m.sess
}

func (m *Model) load(sess *models.Session) error {
	in, err := m.ctrl.Interruptions(sess.ID)
	if err != nil {
		return err
	}

	m.sess = sess
	m.pauses = len(in)

	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

// apply runs op and reloads the session. Failures are shown in the view
// rather than ending the program.
func (m *Model) apply(op func(id int64) (*models.Session, error)) {
	sess, err := op(m.sess.ID)
	if err != nil {
		m.err = err
		return
	}

	m.err = m.load(sess)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.pause):
		m.apply(func(id int64) (*models.Session, error) {
			return m.ctrl.Pause(id, PauseReason)
		})

	case key.Matches(msg, defaultKeymap.resume):
		m.apply(m.ctrl.Resume)

	case key.Matches(msg, defaultKeymap.complete):
		m.apply(m.ctrl.Complete)
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.sess.Status.Terminal() {
			return m, nil
		}

		return m, tick()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}

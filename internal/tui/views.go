package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/deepwork/internal/session"
	"github.com/ayoisaiah/deepwork/internal/timeutil"
	"github.com/ayoisaiah/deepwork/models"
)

// elapsed is the wall time since the session started, up to its end if it
// has one.
func (m *Model) elapsed() time.Duration {
	if m.sess.StartTime == nil {
		return 0
	}

	end := m.clock.Now()
	if m.sess.EndTime != nil {
		end = *m.sess.EndTime
	}

	return end.Sub(*m.sess.StartTime)
}

func (m *Model) percent() float64 {
	scheduled := time.Duration(m.sess.ScheduledDuration) * time.Minute
	if scheduled <= 0 {
		return 0
	}

	return min(float64(m.elapsed())/float64(scheduled), 1)
}

func (m *Model) overtime() bool {
	limit := float64(m.sess.ScheduledDuration) * session.OverdueFactor

	return timeutil.Minutes(m.elapsed()) > limit
}

func (m *Model) helpView() string {
	var bindings []key.Binding

	switch m.sess.Status {
	case models.StatusActive:
		bindings = append(bindings, defaultKeymap.pause, defaultKeymap.complete)
	case models.StatusPaused:
		bindings = append(bindings, defaultKeymap.resume, defaultKeymap.complete)
	}

	bindings = append(bindings, defaultKeymap.quit)

	return m.help.ShortHelpView(bindings)
}

func (m *Model) View() string {
	var s strings.Builder

	status := string(m.sess.Status)

	s.WriteString(m.style.Title.Render(m.sess.Title))
	s.WriteString(" ")
	s.WriteString(m.style.Status[status].Render("[" + status + "]"))

	if m.sess.Goal != nil && *m.sess.Goal != "" {
		s.WriteString("\n" + m.style.Hint.Render(*m.sess.Goal))
	}

	s.WriteString("\n\n")
	s.WriteString(m.style.Secondary.Render(fmt.Sprintf(
		"%s / %d min",
		timeutil.FormatClock(m.elapsed()),
		m.sess.ScheduledDuration,
	)))
	s.WriteString(m.style.Hint.Render(fmt.Sprintf(
		"  pauses %d/%d",
		m.pauses,
		session.MaxPauses,
	)))

	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.percent()))

	if !m.sess.Status.Terminal() && m.overtime() {
		s.WriteString("\n\n" + m.style.Warning.Render("Past the overdue threshold"))
	}

	if m.err != nil {
		s.WriteString("\n\n" + m.style.Error.Render(m.err.Error()))
	}

	s.WriteString("\n\n" + m.helpView())

	return m.style.Base.Render(s.String())
}

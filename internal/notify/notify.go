// Package notify reacts to sessions that reach a final status with a desktop
// notification and an optional user command.
package notify

import (
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/deepwork/models"
)

// Notifier implements session.Hook.
type Notifier struct {
	// notify and run are replaced in tests.
	notify  func(title, msg, icon string) error
	run     func(name string, args ...string) error
	cmd     []string
	enabled bool
}

// New parses sessionCmd with shell quoting rules and returns a Notifier.
// An empty command disables command execution.
func New(enabled bool, sessionCmd string) (*Notifier, error) {
	cmd, err := shellquote.Split(sessionCmd)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	return &Notifier{
		enabled: enabled,
		cmd:     cmd,
		notify:  beeep.Notify,
		run:     startDetached,
	}, nil
}

// startDetached starts the command and reaps it in the background so a slow
// command never holds up the caller.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Error(
				"session command exited with error",
				slog.String("cmd", shellquote.Join(cmd.Args...)),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Message returns the notification title and body for a terminal session.
func Message(sess *models.Session) (title, body string) {
	switch sess.Status {
	case models.StatusCompleted:
		title = "Session completed"
	case models.StatusOverdue:
		title = "Session overdue"
	case models.StatusInterrupted:
		title = "Session interrupted"
	}

	body = fmt.Sprintf(
		"%s (%d min scheduled)",
		sess.Title,
		sess.ScheduledDuration,
	)

	return title, body
}

// SessionChanged fires for every status change and acts only on terminal
// ones.
func (n *Notifier) SessionChanged(sess *models.Session) {
	if !sess.Status.Terminal() {
		return
	}

	if n.enabled {
		title, body := Message(sess)

		if err := n.notify(title, body, ""); err != nil {
			slog.Error(
				"unable to display notification",
				slog.Int64("session_id", sess.ID),
				slog.Any("error", err),
			)
		}
	}

	if len(n.cmd) == 0 {
		return
	}

	if err := n.run(n.cmd[0], n.cmd[1:]...); err != nil {
		slog.Error(
			"unable to start session command",
			slog.Int64("session_id", sess.ID),
			slog.String("cmd", shellquote.Join(n.cmd...)),
			slog.Any("error", err),
		)
	}
}

package app

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/deepwork/internal/config"
	"github.com/ayoisaiah/deepwork/internal/session"
)

// deleteSession deletes the session and its interruptions. It requests
// confirmation before proceeding unless skipConfirm is set.
func deleteSession(engine *session.Engine, id int64, skipConfirm bool) error {
	sess, err := engine.Get(id)
	if err != nil {
		return err
	}

	if !skipConfirm {
		in, err := engine.Interruptions(id)
		if err != nil {
			return err
		}

		if err := printSessionDetail(config.Stdout, sess, in); err != nil {
			return err
		}

		var confirmed bool

		err = huh.NewConfirm().
			Title("The above session will be deleted permanently. Proceed?").
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		if !confirmed {
			fmt.Fprintln(config.Stdout, pterm.Info.Sprint("Nothing was deleted"))
			return nil
		}
	}

	if err := engine.Delete(id); err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, pterm.Success.Sprintf("Deleted session %d", id))

	return nil
}

// Package app wires the deepwork command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/deepwork/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the deepwork app instance.
func Get() *cli.App {
	deepworkApp := &cli.App{
		Name: "deepwork",
		Usage: `
		Deepwork tracks focused work sessions from the command-line. Schedule a
		session, start it, record every interruption, and review how well you
		kept your focus week by week.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Metadata:             map[string]any{},
		Commands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Schedule a new session",
				UsageText: "deepwork create --title TITLE [--goal GOAL] [--duration MINUTES]",
				Flags:     []cli.Flag{titleFlag, goalFlag, durationFlag},
				Action:    createAction,
			},
			{
				Name:      "start",
				Usage:     "Start a scheduled session",
				UsageText: "deepwork start ID",
				Action:    startAction,
			},
			{
				Name:      "pause",
				Usage:     "Pause an active session and record the interruption",
				UsageText: "deepwork pause --reason REASON ID",
				Flags:     []cli.Flag{reasonFlag},
				Action:    pauseAction,
			},
			{
				Name:      "resume",
				Usage:     "Resume a paused session",
				UsageText: "deepwork resume ID",
				Action:    resumeAction,
			},
			{
				Name:      "complete",
				Usage:     "Complete an active or paused session",
				UsageText: "deepwork complete ID",
				Action:    completeAction,
			},
			{
				Name:      "show",
				Usage:     "Print a session with its interruptions and metrics",
				UsageText: "deepwork show [--json] ID",
				Flags:     []cli.Flag{jsonFlag},
				Action:    showAction,
			},
			{
				Name:    "history",
				Aliases: []string{"list"},
				Usage:   "List sessions with their metrics",
				Flags: []cli.Flag{
					periodFlag,
					sinceFlag,
					untilFlag,
					statusFlag,
					sortFlag,
					jsonFlag,
				},
				Action: historyAction,
			},
			{
				Name:   "report",
				Usage:  "Summarise the sessions created this week",
				Flags:  []cli.Flag{jsonFlag},
				Action: reportAction,
			},
			{
				Name:   "export",
				Usage:  "Export every session to a CSV file",
				Flags:  []cli.Flag{outputFlag},
				Action: exportAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a session and its interruptions",
				UsageText: "deepwork delete [--yes] ID",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteAction,
			},
			{
				Name:      "watch",
				Usage:     "Follow a running session in the terminal",
				UsageText: "deepwork watch ID",
				Action:    watchAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve the HTTP API",
				Flags:  []cli.Flag{hostFlag, portFlag},
				Action: serveAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			dbDriverFlag,
			dbPathFlag,
			logLevelFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return deepworkApp
}

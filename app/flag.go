package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	dbDriverFlag = &cli.StringFlag{
		Name:  "db-driver",
		Usage: "Storage backend to use: bolt or sqlite",
	}

	dbPathFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the database file",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log verbosity: debug, info, warn, or error",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a session ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after a session is completed, overdue, or interrupted",
	}

	titleFlag = &cli.StringFlag{
		Name:    "title",
		Aliases: []string{"t"},
		Usage:   "Title of the session",
	}

	goalFlag = &cli.StringFlag{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "What you intend to accomplish in the session",
	}

	durationFlag = &cli.IntFlag{
		Name:    "duration",
		Aliases: []string{"m"},
		Usage:   "Scheduled duration in minutes",
		Value:   defaultDuration,
	}

	reasonFlag = &cli.StringFlag{
		Name:     "reason",
		Aliases:  []string{"r"},
		Usage:    "Why the session is being paused",
		Required: true,
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Only show sessions created in a period: all-time, today, yesterday, 7days, 14days, 30days, 90days, 365days",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show sessions created after this date (e.g. '2 weeks ago', '2026-10-01')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only show sessions created before this date",
	}

	statusFlag = &cli.StringSliceFlag{
		Name:    "status",
		Aliases: []string{"s"},
		Usage:   "Only show sessions with the given statuses (comma separated)",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort sessions by id, title, or created",
		Value: sortByID,
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path to write the CSV export to (defaults to export.path in the config file)",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	hostFlag = &cli.StringFlag{
		Name:  "host",
		Usage: "Address the API server binds to",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Port the API server listens on",
	}
)

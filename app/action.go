package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/deepwork/internal/api"
	"github.com/ayoisaiah/deepwork/internal/config"
	"github.com/ayoisaiah/deepwork/internal/export"
	"github.com/ayoisaiah/deepwork/internal/logging"
	"github.com/ayoisaiah/deepwork/internal/metrics"
	"github.com/ayoisaiah/deepwork/internal/notify"
	"github.com/ayoisaiah/deepwork/internal/pathutil"
	"github.com/ayoisaiah/deepwork/internal/session"
	"github.com/ayoisaiah/deepwork/internal/timeutil"
	"github.com/ayoisaiah/deepwork/internal/tui"
	"github.com/ayoisaiah/deepwork/internal/ui"
	"github.com/ayoisaiah/deepwork/models"
	"github.com/ayoisaiah/deepwork/store"
)

const (
	envNoColor         = "NO_COLOR"
	envDeepworkNoColor = "DEEPWORK_NO_COLOR"

	metaConfig = "config"
	metaLog    = "log"

	defaultDuration = 25
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func getConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, ok := ctx.App.Metadata[metaConfig].(*config.Config)
	if !ok {
		return nil, errNoConfig
	}

	return cfg, nil
}

// openEngine opens the configured store and returns a session engine that
// notifies the user when a session ends. The caller closes the store.
func openEngine(ctx *cli.Context) (*session.Engine, store.DB, error) {
	cfg, err := getConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	n, err := notify.New(cfg.Notifications.Enabled, cfg.Settings.Cmd)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}

	return session.New(db, nil, session.WithHook(n)), db, nil
}

// sessionIDArg parses the first positional argument as a session ID.
func sessionIDArg(ctx *cli.Context) (int64, error) {
	raw := ctx.Args().First()
	if raw == "" {
		return 0, errMissingID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID.Fmt(raw)
	}

	return id, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// createAction handles the create command. Without --title on an
// interactive terminal the user is prompted for the session details.
func createAction(ctx *cli.Context) error {
	params := session.CreateParams{
		Title:             ctx.String("title"),
		ScheduledDuration: ctx.Int("duration"),
	}

	if ctx.IsSet("goal") {
		goal := ctx.String("goal")
		params.Goal = &goal
	}

	if !ctx.IsSet("title") && isatty.IsTerminal(os.Stdin.Fd()) {
		var err error

		params, err = promptCreate(params)
		if err != nil {
			return err
		}
	}

	engine, db, err := openEngine(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sess, err := engine.Create(params)
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, pterm.Success.Sprintf(
		"Scheduled session %d: %s (%d min)",
		sess.ID,
		sess.Title,
		sess.ScheduledDuration,
	))

	return nil
}

// transitionAction runs a lifecycle operation on the session named by the
// first argument and reports the resulting status.
func transitionAction(
	ctx *cli.Context,
	op func(e *session.Engine, id int64) (*models.Session, error),
) error {
	id, err := sessionIDArg(ctx)
	if err != nil {
		return err
	}

	engine, db, err := openEngine(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sess, err := op(engine, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, pterm.Success.Sprintf(
		"Session %d is now %s",
		sess.ID,
		ui.Status(sess.Status),
	))

	return nil
}

func startAction(ctx *cli.Context) error {
	return transitionAction(ctx, (*session.Engine).Start)
}

func pauseAction(ctx *cli.Context) error {
	reason := ctx.String("reason")

	return transitionAction(
		ctx,
		func(e *session.Engine, id int64) (*models.Session, error) {
			return e.Pause(id, reason)
		},
	)
}

func resumeAction(ctx *cli.Context) error {
	return transitionAction(ctx, (*session.Engine).Resume)
}

func completeAction(ctx *cli.Context) error {
	return transitionAction(ctx, (*session.Engine).Complete)
}

// showAction prints a single session with its interruptions.
func showAction(ctx *cli.Context) error {
	id, err := sessionIDArg(ctx)
	if err != nil {
		return err
	}

	engine, db, err := openEngine(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sess, err := engine.Get(id)
	if err != nil {
		return err
	}

	in, err := engine.Interruptions(id)
	if err != nil {
		return err
	}

	if in == nil {
		in = []*models.Interruption{}
	}

	if ctx.Bool("json") {
		return printJSON(config.Stdout, api.SessionDetail{
			Session:        sess,
			Interruptions:  in,
			SessionMetrics: metrics.ForSession(sess, len(in)),
		})
	}

	return printSessionDetail(config.Stdout, sess, in)
}

// historyAction lists the sessions matching the filter flags.
func historyAction(ctx *cli.Context) error {
	f, err := config.Filter(ctx, timeutil.SystemClock{}.Now())
	if err != nil {
		return err
	}

	_, db, err := openEngine(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	entries, err := metrics.History(db, f)
	if err != nil {
		return err
	}

	if err := sortEntries(entries, ctx.String("sort")); err != nil {
		return err
	}

	if ctx.Bool("json") {
		if entries == nil {
			entries = []metrics.HistoryEntry{}
		}

		return printJSON(config.Stdout, entries)
	}

	return printHistoryTable(config.Stdout, entries)
}

// reportAction prints the counts for the current ISO week.
func reportAction(ctx *cli.Context) error {
	_, db, err := openEngine(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	report, err := metrics.Weekly(db, timeutil.SystemClock{})
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(config.Stdout, report)
	}

	return printWeeklyReport(config.Stdout, report)
}

// exportAction writes every session to a CSV file.
func exportAction(ctx *cli.Context) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	_, db, err := openEngine(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	entries, err := metrics.History(db, metrics.Filter{})
	if err != nil {
		return err
	}

	path := firstNonEmptyString(
		ctx.String("output"),
		cfg.Export.Path,
		export.DefaultFileName,
	)

	if err := export.File(path, entries); err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, pterm.Success.Sprintf(
		"Exported %d sessions to %s",
		len(entries),
		path,
	))

	return nil
}

// deleteAction removes a session after confirmation.
func deleteAction(ctx *cli.Context) error {
	id, err := sessionIDArg(ctx)
	if err != nil {
		return err
	}

	engine, db, err := openEngine(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	return deleteSession(engine, id, ctx.Bool("yes"))
}

// watchAction follows a session in the terminal until the user quits.
func watchAction(ctx *cli.Context) error {
	id, err := sessionIDArg(ctx)
	if err != nil {
		return err
	}

	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	engine, db, err := openEngine(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	m, err := tui.New(engine, nil, id, cfg.Display.DarkTheme)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m).Run()

	return err
}

// serveAction serves the HTTP API until interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	if ctx.IsSet("host") {
		cfg.Server.Host = ctx.String("host")
	}

	if ctx.IsSet("port") {
		cfg.Server.Port = ctx.Uint("port")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	engine, db, err := openEngine(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.Default()
	srv := api.NewServer(engine, db, nil, logger)

	fmt.Fprintln(config.Stdout, pterm.Info.Sprintf(
		"Serving the deepwork API on http://%s",
		cfg.Addr(),
	))

	return api.ListenAndServe(sigCtx, cfg.Addr(), srv.Router(), logger)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envDeepworkNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
		config.WithDefaultPaths(),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	ctx.App.Metadata[metaConfig] = cfg
	ctx.App.Metadata[metaLog] = logging.Setup(
		pathutil.LogFilePath(),
		cfg.Logging.Level,
	)

	logging.Dump(slog.Default(), "resolved config", cfg)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting deepwork")

	if closer, ok := ctx.App.Metadata[metaLog].(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

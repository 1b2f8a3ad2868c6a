package app

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/deepwork/internal/metrics"
	"github.com/ayoisaiah/deepwork/internal/ui"
	"github.com/ayoisaiah/deepwork/models"
)

const (
	noSessionsMsg = "No sessions found for the specified filters"
	dateFormat    = "Jan 02, 2006 03:04 PM"
	placeholder   = "-"

	sortByID      = "id"
	sortByTitle   = "title"
	sortByCreated = "created"
)

// sortEntries orders entries in place. Titles compare in natural order so
// that "Session 2" sorts before "Session 10".
func sortEntries(entries []metrics.HistoryEntry, by string) error {
	var less func(a, b metrics.HistoryEntry) int

	switch by {
	case "", sortByID:
		less = func(a, b metrics.HistoryEntry) int {
			return cmp.Compare(a.ID, b.ID)
		}
	case sortByTitle:
		less = func(a, b metrics.HistoryEntry) int {
			switch {
			case natural.Less(a.Title, b.Title):
				return -1
			case natural.Less(b.Title, a.Title):
				return 1
			default:
				return cmp.Compare(a.ID, b.ID)
			}
		}
	case sortByCreated:
		less = func(a, b metrics.HistoryEntry) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}

			return cmp.Compare(a.ID, b.ID)
		}
	default:
		return errInvalidSort.Fmt(by)
	}

	slices.SortStableFunc(entries, less)

	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return placeholder
	}

	return t.Local().Format(dateFormat)
}

func formatFloat(v *float64, suffix string) string {
	if v == nil {
		return placeholder
	}

	return strconv.FormatFloat(*v, 'f', -1, 64) + suffix
}

// printHistoryTable prints a session table to the command-line.
func printHistoryTable(w io.Writer, entries []metrics.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, pterm.Info.Sprint(noSessionsMsg))
		return err
	}

	tableBody := make([][]string, 0, len(entries)+1)
	tableBody = append(tableBody, []string{
		"ID", "TITLE", "STATUS", "SCHEDULED", "ACTUAL", "PAUSES", "FOCUS", "STARTED",
	})

	for i := range entries {
		e := &entries[i]

		tableBody = append(tableBody, []string{
			strconv.FormatInt(e.ID, 10),
			e.Title,
			ui.Status(e.Status),
			fmt.Sprintf("%d min", e.ScheduledDuration),
			formatFloat(e.ActualDuration, " min"),
			strconv.Itoa(e.PauseCount),
			formatFloat(e.FocusScore, "%"),
			formatDate(e.StartTime),
		})
	}

	return ui.PrintTable(tableBody, w)
}

// printSessionDetail prints one session followed by its interruptions.
func printSessionDetail(
	w io.Writer,
	sess *models.Session,
	in []*models.Interruption,
) error {
	m := metrics.ForSession(sess, len(in))

	goal := placeholder
	if sess.Goal != nil && *sess.Goal != "" {
		goal = *sess.Goal
	}

	fields := [][]string{
		{ui.Highlight("ID"), strconv.FormatInt(sess.ID, 10)},
		{ui.Highlight("Title"), sess.Title},
		{ui.Highlight("Goal"), goal},
		{ui.Highlight("Status"), ui.Status(sess.Status)},
		{ui.Highlight("Scheduled"), fmt.Sprintf("%d min", sess.ScheduledDuration)},
		{ui.Highlight("Actual"), formatFloat(m.ActualDuration, " min")},
		{ui.Highlight("Completion"), formatFloat(m.CompletionRatio, "")},
		{ui.Highlight("Focus score"), formatFloat(m.FocusScore, "%")},
		{ui.Highlight("Created"), formatDate(&sess.CreatedAt)},
		{ui.Highlight("Started"), formatDate(sess.StartTime)},
		{ui.Highlight("Ended"), formatDate(sess.EndTime)},
	}

	if err := ui.PrintFields(fields, w); err != nil {
		return err
	}

	if len(in) == 0 {
		return nil
	}

	tableBody := [][]string{{"#", "PAUSED AT", "REASON"}}

	for i, v := range in {
		tableBody = append(tableBody, []string{
			strconv.Itoa(i + 1),
			formatDate(&v.PauseTime),
			v.Reason,
		})
	}

	return ui.PrintTable(tableBody, w)
}

// printWeeklyReport prints the weekly counts.
func printWeeklyReport(w io.Writer, report []metrics.WeeklyReport) error {
	tableBody := [][]string{
		{"WEEK", "TOTAL", "COMPLETED", "OVERDUE", "INTERRUPTED"},
	}

	for _, r := range report {
		tableBody = append(tableBody, []string{
			r.Week,
			strconv.Itoa(r.TotalSessions),
			ui.Green(r.CompletedSessions),
			ui.Yellow(r.OverdueSessions),
			ui.Red(r.InterruptedSessions),
		})
	}

	return ui.PrintTable(tableBody, w)
}

// Package export renders session history as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ayoisaiah/deepwork/internal/metrics"
	"github.com/ayoisaiah/deepwork/internal/osutil"
)

const (
	// DefaultFileName is where File writes when no path is given.
	DefaultFileName = "sessions_export.csv"

	// Placeholder stands in for values that are absent or not computable.
	Placeholder = "N/A"

	timeFormat = "02-01-2006 15:04"

	// displayOffset shifts stored UTC timestamps for display. It is a fixed
	// +05:30, not a time zone.
	displayOffset = 5*time.Hour + 30*time.Minute
)

var header = []string{
	"ID",
	"Title",
	"Goal",
	"Status",
	"Scheduled Duration (min)",
	"Actual Duration (min)",
	"Pause Count",
	"Focus Score",
	"Start Time",
	"End Time",
}

// ToOffsetTime returns t shifted by the display offset, or nil if t is nil.
func ToOffsetTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	shifted := t.Add(displayOffset)

	return &shifted
}

func formatTime(t *time.Time) string {
	shifted := ToOffsetTime(t)
	if shifted == nil {
		return Placeholder
	}

	return shifted.Format(timeFormat)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func row(e *metrics.HistoryEntry) []string {
	goal := Placeholder
	if e.Goal != nil && *e.Goal != "" {
		goal = *e.Goal
	}

	actual := "0"
	if e.ActualDuration != nil {
		actual = formatFloat(*e.ActualDuration)
	}

	focus := Placeholder
	if e.FocusScore != nil {
		focus = formatFloat(*e.FocusScore) + "%"
	}

	return []string{
		strconv.FormatInt(e.ID, 10),
		e.Title,
		goal,
		string(e.Status),
		strconv.Itoa(e.ScheduledDuration),
		actual,
		strconv.Itoa(e.PauseCount),
		focus,
		formatTime(e.StartTime),
		formatTime(e.EndTime),
	}
}

// CSV writes a header row followed by one row per entry.
func CSV(w io.Writer, entries []metrics.HistoryEntry) error {
	cw := csv.NewWriter(w)

	err := cw.Write(header)
	if err != nil {
		return err
	}

	for i := range entries {
		err = cw.Write(row(&entries[i]))
		if err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// File writes the CSV export to path, replacing any existing file.
func File(path string, entries []metrics.HistoryEntry) (err error) {
	if path == "" {
		path = DefaultFileName
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	f, err := os.OpenFile(
		path,
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
		osutil.FilePermission,
	)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	return CSV(f, entries)
}

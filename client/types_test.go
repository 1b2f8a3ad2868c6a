package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/deepwork/client"
	"github.com/ayoisaiah/deepwork/models"
)

func stubServer(t *testing.T, body string) *client.Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	return client.New(ts.URL, client.WithHTTPClient(ts.Client()))
}

func TestHistoryDecodesEntries(t *testing.T) {
	c := stubServer(t, `[{
		"id": 3,
		"title": "Write docs",
		"goal": null,
		"scheduled_duration": 30,
		"status": "overdue",
		"created_at": "2026-10-15T09:00:00Z",
		"start_time": "2026-10-15T09:00:00Z",
		"end_time": "2026-10-15T09:40:00Z",
		"actual_duration": 40,
		"completion_ratio": 1.33,
		"focus_score": 93.33,
		"pause_count": 2
	}]`)

	var entries []client.HistoryEntry

	entries, err := c.History(context.Background())
	require.NoError(t, err)

	start := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(40 * time.Minute)
	actual, ratio, score := 40.0, 1.33, 93.33

	want := []client.HistoryEntry{{
		ID:                3,
		Title:             "Write docs",
		ScheduledDuration: 30,
		Status:            models.StatusOverdue,
		CreatedAt:         start,
		StartTime:         &start,
		EndTime:           &end,
		ActualDuration:    &actual,
		CompletionRatio:   &ratio,
		FocusScore:        &score,
		PauseCount:        2,
	}}

	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("History() mismatch (-want +got):\n%s", diff)
	}
}

func TestWeeklyReportDecodes(t *testing.T) {
	c := stubServer(t, `[{"week":"2026-W42","total_sessions":4,`+
		`"completed_sessions":2,"overdue_sessions":1,"interrupted_sessions":1}]`)

	report, err := c.WeeklyReport(context.Background())
	require.NoError(t, err)

	want := []client.WeeklyReport{{
		Week:                "2026-W42",
		TotalSessions:       4,
		CompletedSessions:   2,
		OverdueSessions:     1,
		InterruptedSessions: 1,
	}}

	if diff := cmp.Diff(want, report); diff != "" {
		t.Fatalf("WeeklyReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionDecodes(t *testing.T) {
	c := stubServer(t, `{"id":7,"title":"Plan","scheduled_duration":25,`+
		`"status":"active","created_at":"2026-10-15T09:00:00Z",`+
		`"start_time":"2026-10-15T09:05:00Z"}`)

	var sess *models.Session

	sess, err := c.StartSession(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, sess.Status)
	require.NotNil(t, sess.StartTime)
	require.Nil(t, sess.EndTime)
}

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/deepwork/internal/metrics"
	"github.com/ayoisaiah/deepwork/internal/testutil"
	"github.com/ayoisaiah/deepwork/models"
)

type TestCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

func date(day, hour, minute, sec int) *time.Time {
	t := time.Date(2026, 1, day, hour, minute, sec, 0, time.UTC)
	return &t
}

func entry(sess *models.Session, pauses int) metrics.HistoryEntry {
	return metrics.HistoryEntry{
		ID:                sess.ID,
		Title:             sess.Title,
		Goal:              sess.Goal,
		ScheduledDuration: sess.ScheduledDuration,
		Status:            sess.Status,
		StartTime:         sess.StartTime,
		EndTime:           sess.EndTime,
		CreatedAt:         sess.CreatedAt,
		SessionMetrics:    metrics.ForSession(sess, pauses),
	}
}

func sampleHistory() []metrics.HistoryEntry {
	outline := "Outline + intro"
	tag := "Tag v1"
	empty := ""

	nye := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)
	nyeEnd := nye.Add(15*time.Minute + 20*time.Second)

	return []metrics.HistoryEntry{
		entry(&models.Session{
			ID:                1,
			Title:             "Write report",
			Goal:              &outline,
			ScheduledDuration: 30,
			Status:            models.StatusCompleted,
			StartTime:         date(1, 12, 0, 0),
			EndTime:           date(1, 12, 30, 0),
		}, 1),
		entry(&models.Session{
			ID:                2,
			Title:             "Review, notes",
			ScheduledDuration: 45,
			Status:            models.StatusScheduled,
		}, 0),
		entry(&models.Session{
			ID:                3,
			Title:             "Deep dive",
			Goal:              &empty,
			ScheduledDuration: 3,
			Status:            models.StatusInterrupted,
			StartTime:         date(1, 20, 0, 0),
		}, 4),
		entry(&models.Session{
			ID:                4,
			Title:             "Release checklist",
			Goal:              &tag,
			ScheduledDuration: 10,
			Status:            models.StatusOverdue,
			StartTime:         &nye,
			EndTime:           &nyeEnd,
		}, 0),
	}
}

func TestToOffsetTime(t *testing.T) {
	assert.Nil(t, ToOffsetTime(nil))

	got := ToOffsetTime(date(1, 12, 0, 0))
	require.NotNil(t, got)
	assert.True(t, got.Equal(*date(1, 17, 30, 0)), "got %s", got)
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer

	err := CSV(&buf, sampleHistory())
	require.NoError(t, err)

	tc := TestCase{
		Name:       "export session history",
		GoldenFile: "history",
		Snapshot:   buf.Bytes(),
	}

	testutil.CompareGoldenFile(t, tc)
}

func TestCSVEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, CSV(&buf, nil))

	assert.Equal(
		t,
		"ID,Title,Goal,Status,Scheduled Duration (min),Actual Duration (min),Pause Count,Focus Score,Start Time,End Time\n",
		buf.String(),
	)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, File(path, sampleHistory()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join("testdata", "history.golden"))
	require.NoError(t, err)

	assert.Equal(t, string(golden), string(b))
}

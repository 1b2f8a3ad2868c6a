package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/deepwork/internal/apperr"
	"github.com/ayoisaiah/deepwork/models"
)

var backends = []struct {
	driver string
	file   string
}{
	{DriverBolt, "deepwork.db"},
	{DriverSQLite, "deepwork.sqlite"},
}

func openTestDB(t *testing.T, driver, file string) DB {
	t.Helper()

	db, err := Open(driver, filepath.Join(t.TempDir(), file))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func newSession(title string, created time.Time) *models.Session {
	goal := "ship it"

	return &models.Session{
		Title:             title,
		Goal:              &goal,
		ScheduledDuration: 30,
		Status:            models.StatusScheduled,
		CreatedAt:         created,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	created := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	for _, b := range backends {
		t.Run(b.driver, func(t *testing.T) {
			db := openTestDB(t, b.driver, b.file)

			first := newSession("Write report", created)
			require.NoError(t, db.InsertSession(first))
			assert.Equal(t, int64(1), first.ID)

			second := newSession("Review", created.Add(time.Hour))
			second.Goal = nil
			require.NoError(t, db.InsertSession(second))
			assert.Equal(t, int64(2), second.ID)

			start := created.Add(5 * time.Minute)
			first.Status = models.StatusActive
			first.StartTime = &start
			require.NoError(t, db.UpdateSession(first))

			got, err := db.GetSession(first.ID)
			require.NoError(t, err)

			if diff := cmp.Diff(first, got); diff != "" {
				t.Errorf("session mismatch (-want +got):\n%s", diff)
			}

			all, err := db.ListSessions()
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "Write report", all[0].Title)
			assert.Nil(t, all[1].Goal)
		})
	}
}

func TestGetMissingSession(t *testing.T) {
	for _, b := range backends {
		t.Run(b.driver, func(t *testing.T) {
			db := openTestDB(t, b.driver, b.file)

			sess, err := db.GetSession(42)
			require.NoError(t, err)
			assert.Nil(t, sess)

			err = db.UpdateSession(&models.Session{
				ID:     42,
				Status: models.StatusActive,
			})
			assert.ErrorIs(t, err, apperr.ErrNotFound)
		})
	}
}

func TestInterruptionsCascade(t *testing.T) {
	created := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	for _, b := range backends {
		t.Run(b.driver, func(t *testing.T) {
			db := openTestDB(t, b.driver, b.file)

			keep := newSession("Keep", created)
			drop := newSession("Drop", created)
			require.NoError(t, db.InsertSession(keep))
			require.NoError(t, db.InsertSession(drop))

			for i := range 3 {
				require.NoError(t, db.PauseSession(drop, &models.Interruption{
					SessionID: drop.ID,
					Reason:    "phone",
					PauseTime: created.Add(time.Duration(i) * time.Minute),
				}))
			}

			in := &models.Interruption{
				SessionID: keep.ID,
				Reason:    "coffee",
				PauseTime: created,
			}
			require.NoError(t, db.PauseSession(keep, in))
			assert.Equal(t, int64(4), in.ID)

			n, err := db.CountInterruptions(drop.ID)
			require.NoError(t, err)
			assert.Equal(t, 3, n)

			list, err := db.ListInterruptions(drop.ID)
			require.NoError(t, err)
			require.Len(t, list, 3)
			assert.True(t, list[2].PauseTime.Equal(created.Add(2*time.Minute)))

			require.NoError(t, db.DeleteSession(drop.ID))

			n, err = db.CountInterruptions(drop.ID)
			require.NoError(t, err)
			assert.Zero(t, n)

			n, err = db.CountInterruptions(keep.ID)
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			err = db.DeleteSession(drop.ID)
			assert.ErrorIs(t, err, apperr.ErrNotFound)
		})
	}
}

func TestPauseSession(t *testing.T) {
	created := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	started := created.Add(time.Minute)

	for _, b := range backends {
		t.Run(b.driver, func(t *testing.T) {
			db := openTestDB(t, b.driver, b.file)

			sess := newSession("Pause me", created)
			require.NoError(t, db.InsertSession(sess))

			sess.Status = models.StatusPaused
			sess.StartTime = &started

			in := &models.Interruption{
				SessionID: sess.ID,
				Reason:    "call",
				PauseTime: created.Add(5 * time.Minute),
			}
			require.NoError(t, db.PauseSession(sess, in))
			assert.Equal(t, int64(1), in.ID)

			stored, err := db.GetSession(sess.ID)
			require.NoError(t, err)
			assert.Equal(t, models.StatusPaused, stored.Status)

			n, err := db.CountInterruptions(sess.ID)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestPauseSessionRollsBack(t *testing.T) {
	created := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	for _, b := range backends {
		t.Run(b.driver, func(t *testing.T) {
			db := openTestDB(t, b.driver, b.file)

			missing := newSession("Ghost", created)
			missing.ID = 9

			err := db.PauseSession(missing, &models.Interruption{
				SessionID: missing.ID,
				Reason:    "phone",
				PauseTime: created,
			})
			require.Error(t, err)

			n, err := db.CountInterruptions(missing.ID)
			require.NoError(t, err)
			assert.Zero(t, n)

			list, err := db.ListInterruptions(missing.ID)
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestBoltLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deepwork.db")

	db, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = NewClient(path)
	assert.ErrorIs(t, err, errDBLocked)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("postgres", filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

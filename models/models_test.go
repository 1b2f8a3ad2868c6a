package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/deepwork/internal/apperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseStatus(" Completed ")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got)

	_, err = ParseStatus("cancelled")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusScheduled, StatusActive, true},
		{StatusScheduled, StatusPaused, false},
		{StatusActive, StatusPaused, true},
		{StatusActive, StatusInterrupted, true},
		{StatusPaused, StatusActive, true},
		{StatusPaused, StatusPaused, false},
		{StatusPaused, StatusOverdue, true},
		{StatusInterrupted, StatusActive, false},
		{StatusInterrupted, StatusCompleted, false},
		{StatusCompleted, StatusActive, false},
		{StatusOverdue, StatusCompleted, false},
	}

	for _, tc := range testCases {
		assert.Equal(
			t,
			tc.want,
			CanTransition(tc.from, tc.to),
			"%s -> %s",
			tc.from,
			tc.to,
		)
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.False(t, StatusScheduled.Started())
	assert.True(t, StatusInterrupted.Started())
	assert.True(t, StatusInterrupted.Terminal())
	assert.False(t, StatusInterrupted.Ended())
	assert.True(t, StatusOverdue.Ended())
	assert.False(t, StatusPaused.Terminal())
}

func TestStatusJSONRejectsUnknown(t *testing.T) {
	var sess Session

	err := json.Unmarshal([]byte(`{"status":"done"}`), &sess)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	err = json.Unmarshal([]byte(`{"status":"paused"}`), &sess)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, sess.Status)
}

package timeutil

import (
	"testing"
	"time"
)

func TestRound2(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{96.6666666, 96.67},
		{1, 1},
		{0.004, 0},
		{-3.333, -3.33},
		{15.005000001, 15.01},
	}

	for _, tc := range testCases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v): expected %v, but got %v", tc.in, tc.want, got)
		}
	}
}

func TestMinutes(t *testing.T) {
	got := Minutes(15*time.Minute + 20*time.Second)
	if got != 15.33 {
		t.Errorf("expected 15.33, but got %v", got)
	}
}

func TestWeekLabel(t *testing.T) {
	testCases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), "2026-W01"},
		{time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC), "2026-W42"},
		// ISO year differs from the calendar year here
		{time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC), "2026-W53"},
	}

	for _, tc := range testCases {
		if got := WeekLabel(tc.in); got != tc.want {
			t.Errorf("WeekLabel(%s): expected %s, but got %s", tc.in, tc.want, got)
		}
	}
}

func TestSameISOWeek(t *testing.T) {
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)
	nextMonday := monday.AddDate(0, 0, 7)

	if !SameISOWeek(monday, sunday) {
		t.Error("expected monday and sunday to share a week")
	}

	if SameISOWeek(sunday, nextMonday) {
		t.Error("expected sunday and the following monday to differ")
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(75 * time.Second); got != "01:15" {
		t.Errorf("expected 01:15, but got %s", got)
	}

	if got := FormatClock(2*time.Hour + 5*time.Minute + 9*time.Second); got != "02:05:09" {
		t.Errorf("expected 02:05:09, but got %s", got)
	}
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &FixedClock{T: start}

	c.Advance(90 * time.Minute)

	if !c.Now().Equal(start.Add(90 * time.Minute)) {
		t.Errorf("expected clock to advance by 90 minutes, got %s", c.Now())
	}
}

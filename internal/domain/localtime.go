package domain

import (
	"fmt"
	"strings"
	"time"
)

// LocalTimeLayout is the canonical text form of shift timestamps.
const LocalTimeLayout = "2006-01-02T15:04:05"

// DateLayout is the canonical text form of calendar days.
const DateLayout = "2006-01-02"

var localTimeLayouts = []string{
	LocalTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// WallClock returns t's local wall-clock reading as a UTC-located time.
// Shift timestamps carry no zone; comparing them only makes sense on wall clocks.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// ParseLocalTime parses a shift timestamp. RFC3339 input keeps its wall clock and drops the offset.
func ParseLocalTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range localTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return WallClock(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (want YYYY-MM-DDTHH:MM)", value)
}

// FormatLocalTime renders a wall-clock timestamp without zone information.
func FormatLocalTime(t time.Time) string {
	return t.Format(LocalTimeLayout)
}

// ParseDate parses a YYYY-MM-DD day at midnight wall clock.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}

// DateOnly truncates t to midnight of its calendar day, keeping its location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

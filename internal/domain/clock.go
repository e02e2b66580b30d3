package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseClock parses an "HH:MM" string into minutes since midnight.
// Malformed or empty input yields 0: an absent schedule field is treated
// as a zero-length segment, never an error.
func ParseClock(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0
	}
	return h*60 + m
}

// ValidateClock checks that hhmm is a well-formed "HH:MM" clock value.
// Unlike ParseClock, which maps malformed input to 0, this rejects it:
// use it wherever the string comes from the user rather than the store.
func ValidateClock(hhmm string) error {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("clock %q: expected HH:MM", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return fmt.Errorf("clock %q: hour out of range", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return fmt.Errorf("clock %q: minute out of range", hhmm)
	}
	return nil
}

// SpanMinutes returns the duration of the span [start, end] in minutes.
// When end is numerically before start, the span wraps past midnight and
// 24h is added. An empty start or end yields 0.
func SpanMinutes(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	s, e := ParseClock(start), ParseClock(end)
	if e < s {
		e += 24 * 60
	}
	return e - s
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day count from a to b (b - a).
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// FormatDate renders t as an ISO yyyy-MM-dd key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO yyyy-MM-dd string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

package domain

import "time"

// EventDate is a calendar event affecting availability.
type EventDate struct {
	ID           string
	Title        string
	StartDate    time.Time
	Type         EventType
	DurationDays int
	Note         string

	CreatedAt time.Time
}

// Covers reports whether date falls within [StartDate, StartDate+DurationDays).
func (e EventDate) Covers(date time.Time) bool {
	days := e.DurationDays
	if days < 1 {
		days = 1
	}
	d := DateOnly(date)
	start := DateOnly(e.StartDate)
	return !d.Before(start) && d.Before(start.AddDate(0, 0, days))
}

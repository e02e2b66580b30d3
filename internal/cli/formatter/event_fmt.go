package formatter

import (
	"fmt"
	"strings"

	"github.com/hsato/studyplan/internal/domain"
)

// FormatEventList renders the calendar listing for `event list`.
func FormatEventList(events []domain.EventDate) string {
	if len(events) == 0 {
		return Dim("No events on the calendar.")
	}

	var b strings.Builder
	b.WriteString(Header("Events"))
	b.WriteString("\n")
	for _, e := range events {
		b.WriteString(formatEventLine(e))
		b.WriteString("\n")
	}
	return b.String()
}

func formatEventLine(e domain.EventDate) string {
	span := domain.FormatDate(e.StartDate)
	if e.DurationDays > 1 {
		end := e.StartDate.AddDate(0, 0, e.DurationDays-1)
		span = fmt.Sprintf("%s … %s", span, domain.FormatDate(end))
	}

	line := fmt.Sprintf("%s  %s %s  %s",
		Dim(shortID(e.ID)), eventTypeLabel(e.Type), span, Bold(e.Title))
	if e.Note != "" {
		line += "  " + Dim(e.Note)
	}
	return line
}

func eventTypeLabel(t domain.EventType) string {
	switch t {
	case domain.EventMatch:
		return StyleRed.Render("[match]")
	case domain.EventMockExam:
		return StylePurple.Render("[mock]")
	case domain.EventRegularTest:
		return StyleYellow.Render("[test]")
	case domain.EventSchool:
		return StyleBlue.Render("[school]")
	default:
		return StyleDim.Render("[other]")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hsato/studyplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Minutes renders a minute count as "45m" or "1h30m".
func Minutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh%02dm", min/60, min%60)
}

// PlanDate renders a plan date like "Mon, Sep 1 2025".
func PlanDate(t time.Time) string {
	return t.Format("Mon, Jan 2 2006")
}

// DayTypeLabel returns the display string for a day classification.
func DayTypeLabel(p *domain.DailyPlan) string {
	switch {
	case p.MatchDay:
		return StyleRed.Render("match day")
	case p.EventDay:
		return StyleYellow.Render("event day")
	default:
		return strings.ReplaceAll(string(p.DayType), "_", " ")
	}
}

// CheckMark returns the completion marker for a task.
func CheckMark(done bool) string {
	if done {
		return StyleGreen.Render("✓")
	}
	return StyleDim.Render("·")
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hsato/studyplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStyle returns the style used for a preparation phase label.
func PhaseStyle(phase domain.PhaseName) lipgloss.Style {
	switch phase {
	case domain.PhaseFinal:
		return StyleRed
	case domain.PhasePractice:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// PhaseIndicator returns a colored phase label such as "● FINAL (21 days left)".
func PhaseIndicator(phase domain.PhaseName, daysLeft int) string {
	label := fmt.Sprintf("● %s (%d days left)", strings.ToUpper(string(phase)), daysLeft)
	return PhaseStyle(phase).Render(label)
}

// PomodoroLabel returns a short colored tag for a pomodoro type.
func PomodoroLabel(pt domain.PomodoroType) string {
	switch pt {
	case domain.PomodoroThinking:
		return StyleBlue.Render("[think]")
	case domain.PomodoroMemorization:
		return StylePurple.Render("[memo]")
	case domain.PomodoroProcessing:
		return StyleYellow.Render("[proc]")
	case domain.PomodoroExamPractice:
		return StyleRed.Render("[exam]")
	default:
		return StyleDim.Render("[?]")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

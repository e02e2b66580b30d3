package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/hsato/studyplan/internal/domain"
)

// studyplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func studyplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateDate is a huh validator for YYYY-MM-DD inputs.
func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// validateClock is a huh validator for HH:MM inputs.
func validateClock(s string) error {
	if err := domain.ValidateClock(s); err != nil {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

// validateInt is a huh validator for non-negative integer inputs.
func validateInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("expected a non-negative number")
	}
	return nil
}

// parseIntOr parses s as an integer, returning fallback on failure. Used
// after huh form validation has already ensured the string is valid.
func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// wizardSubjectOptions builds the catalog multi-select options.
func wizardSubjectOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.CatalogSubjectIDs))
	for _, id := range domain.CatalogSubjectIDs {
		info := domain.LookupSubject(id)
		options = append(options, huh.NewOption(info.Name, id))
	}
	return options
}

// wizardWeekdayOptions builds club-practice weekday options.
func wizardWeekdayOptions() []huh.Option[string] {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	options := make([]huh.Option[string], 0, len(days))
	for _, d := range days {
		options = append(options, huh.NewOption(d, d))
	}
	return options
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/ruleset"
)

// FormatRules renders the `rules show` output.
func FormatRules(cfg ruleset.Config) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Rule configuration v%d", cfg.Version)))
	b.WriteString("\n")

	b.WriteString(Bold("Phases"))
	b.WriteString("\n")
	for _, band := range cfg.PhaseBands {
		b.WriteString(fmt.Sprintf("  %-12s %d – %d days left\n", band.Name, band.Min, band.Max))
	}

	b.WriteString(Bold("Reviews"))
	b.WriteString("\n")
	intervals := make([]string, len(cfg.Forgetting.IntervalsDays))
	for i, d := range cfg.Forgetting.IntervalsDays {
		intervals[i] = fmt.Sprintf("%d", d)
	}
	b.WriteString(fmt.Sprintf("  intervals %s days, cap %s/day, graduate after %d\n",
		strings.Join(intervals, "/"), Minutes(cfg.Forgetting.MaxDailyReviewMin),
		cfg.Forgetting.GraduationCount))

	b.WriteString(Bold("General"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  buffer %.0f%%, rotation %s\n",
		cfg.General.BufferRatio*100, onOff(cfg.General.RotateSubjects)))
	for _, pt := range []domain.PomodoroType{
		domain.PomodoroThinking, domain.PomodoroProcessing,
		domain.PomodoroMemorization, domain.PomodoroExamPractice,
	} {
		b.WriteString(fmt.Sprintf("  %-14s %dm work / %dm break\n",
			pt, cfg.General.WorkMinFor(pt), cfg.General.BreakMinFor(pt)))
	}

	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Package planner implements the daily plan generation engine: phase
// detection, availability calculation, spaced-repetition review scheduling,
// weighted time allocation, and plan assembly. Every function is pure:
// "now" is always an explicit input and the rule configuration arrives as
// a snapshot parameter.
package planner

import (
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/ruleset"
)

// Phase is the preparation stage a target date falls in.
type Phase struct {
	Name     domain.PhaseName
	DaysLeft int
	// Weights are display-only allocation-weight labels carried from the
	// matched band; the numeric allocation does not consume them.
	Weights map[string]float64
}

// DetectPhase selects the preparation phase for targetDate by table lookup
// on whole days remaining until examDate. A band matches when
// daysLeft >= Min && daysLeft < Max; first match wins. A day count no band
// covers falls open to the last configured band, never an error.
func DetectPhase(examDate, targetDate time.Time, bands []ruleset.PhaseBand) Phase {
	daysLeft := domain.DaysBetween(targetDate, examDate)
	if daysLeft < 0 {
		daysLeft = 0
	}
	if len(bands) == 0 {
		bands = ruleset.Default().PhaseBands
	}

	for _, b := range bands {
		if daysLeft >= b.Min && daysLeft < b.Max {
			return Phase{Name: b.Name, DaysLeft: daysLeft, Weights: b.Weights}
		}
	}

	last := bands[len(bands)-1]
	return Phase{Name: last.Name, DaysLeft: daysLeft, Weights: last.Weights}
}

// Package ruleset holds the versioned rule configuration the planning
// engine consumes as a read-only snapshot. The engine never reaches into
// ambient state: every core function takes the snapshot (or the sub-config
// it needs) as an explicit parameter.
package ruleset

import (
	"time"

	"github.com/hsato/studyplan/internal/domain"
)

// Config is one immutable rule-configuration snapshot.
type Config struct {
	Version      int                `json:"version"`
	SavedAt      time.Time          `json:"savedAt"`
	PhaseBands   []PhaseBand        `json:"phaseBands"`
	DayTemplates []DayTemplate      `json:"dayTemplates"`
	PhaseContent []PhaseContentRule `json:"phaseContent"`
	Forgetting   ForgettingCurve    `json:"forgettingCurve"`
	General      General            `json:"general"`
}

// PhaseBand maps a days-left range onto a preparation phase. The band
// matches when daysLeft >= Min && daysLeft < Max; first match wins and an
// unmatched count falls open to the last configured band.
type PhaseBand struct {
	Name domain.PhaseName `json:"name"`
	Min  int              `json:"min"`
	Max  int              `json:"max"`
	// Weights are display-only percentage labels (sum <= 1); they do not
	// drive the numeric allocation.
	Weights map[string]float64 `json:"weights"`
}

// DayTemplate is the ordered block layout for one day type.
type DayTemplate struct {
	DayType domain.DayType `json:"dayType"`
	Blocks  []BlockConfig  `json:"blocks"`
}

// BlockConfig is one study block within a day template.
type BlockConfig struct {
	Category    domain.SubjectCategory `json:"category"`
	DurationMin int                    `json:"durationMin"`
	WorkMin     int                    `json:"workMin"`
	BreakMin    int                    `json:"breakMin"`
	Enabled     bool                   `json:"enabled"`
}

// PhaseContentRule supplies the content string for a subject category in a
// given phase.
type PhaseContentRule struct {
	Category domain.SubjectCategory `json:"category"`
	Phase    domain.PhaseName       `json:"phase"`
	Content  string                 `json:"content"`
}

// ForgettingCurve configures the spaced-repetition review scheduler.
type ForgettingCurve struct {
	// IntervalsDays is the review offsets from the original completion
	// date; non-empty, each >= 1.
	IntervalsDays []int `json:"intervalsDays"`
	// MaxDailyReviewMin caps total review time scheduled per day.
	MaxDailyReviewMin int `json:"maxDailyReviewMin"`
	// GraduationCount is the contiguous completed-review streak (from
	// review #1) after which a series stops generating reviews; >= 2.
	GraduationCount int `json:"graduationCount"`
}

// PomodoroLength is the work/break split for one pomodoro type.
type PomodoroLength struct {
	WorkMin  int `json:"workMin"`
	BreakMin int `json:"breakMin"`
}

// General holds the remaining engine heuristics.
type General struct {
	BufferRatio    float64                                `json:"bufferRatio"`
	Pomodoro       map[domain.PomodoroType]PomodoroLength `json:"pomodoro"`
	RotateSubjects bool                                   `json:"rotateSubjects"`
}

// WorkMinFor returns the work-minutes length for a pomodoro type, falling
// back to the default table when the snapshot omits the type.
func (g General) WorkMinFor(pt domain.PomodoroType) int {
	if l, ok := g.Pomodoro[pt]; ok && l.WorkMin > 0 {
		return l.WorkMin
	}
	return defaultPomodoro[pt].WorkMin
}

// BreakMinFor returns the break-minutes length for a pomodoro type.
func (g General) BreakMinFor(pt domain.PomodoroType) int {
	if l, ok := g.Pomodoro[pt]; ok && l.BreakMin > 0 {
		return l.BreakMin
	}
	return defaultPomodoro[pt].BreakMin
}

// ContentFor returns the phase-content string for a category and phase, or
// a generic fallback when no rule matches.
func (c Config) ContentFor(cat domain.SubjectCategory, phase domain.PhaseName) string {
	for _, r := range c.PhaseContent {
		if r.Category == cat && r.Phase == phase {
			return r.Content
		}
	}
	return "Work through the current textbook chapter"
}

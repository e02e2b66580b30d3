package domain

import "time"

// DailyPlan is the generated schedule for one calendar date. Plans are a
// memoized projection of configuration: regeneration fully replaces any
// previously stored plan for the same date.
type DailyPlan struct {
	Date         time.Time
	Phase        PhaseName
	DaysLeft     int
	DayType      DayType
	ClubDay      bool
	MatchDay     bool
	EventDay     bool
	AvailableMin int
	Tasks        []StudyTask
	// CompletionRate is derived from completion state after the fact;
	// a freshly generated plan reports 0.
	CompletionRate float64
}

// DateKey returns the ISO date string the plan cache is keyed by.
func (p DailyPlan) DateKey() string {
	return FormatDate(p.Date)
}

// TotalEstimatedMin sums estimated minutes across all tasks.
func (p DailyPlan) TotalEstimatedMin() int {
	total := 0
	for _, t := range p.Tasks {
		total += t.EstimatedMin
	}
	return total
}

// RecomputeCompletion recalculates the completion rate from task state.
func (p *DailyPlan) RecomputeCompletion() {
	if len(p.Tasks) == 0 {
		p.CompletionRate = 0
		return
	}
	done := 0
	for _, t := range p.Tasks {
		if t.Completed {
			done++
		}
	}
	p.CompletionRate = float64(done) / float64(len(p.Tasks))
}

package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/ruleset"
)

// Input bundles the materialized snapshot the assembler works from. The
// caller (persistence layer) is responsible for loading a consistent
// snapshot; the assembler itself performs no I/O.
type Input struct {
	Profile    *domain.StudentProfile
	Events     []domain.EventDate
	History    []domain.StudyTask
	TargetDate time.Time
	Rules      ruleset.Config
}

// AssemblePlan produces the daily plan for the target date. It never
// returns an error: absent subjects, absent schedule fields, or zero
// availability all degrade to an empty or minimal plan. Repeated calls
// with the same input produce byte-identical plans, task ids included.
//
// The configured buffer ratio is applied here rather than during
// availability calculation: it shaves the new-learning budget after due
// reviews have claimed their time, so AvailableMin always reports the
// un-buffered day and reviews are never squeezed by the buffer.
func AssemblePlan(in Input) domain.DailyPlan {
	date := domain.DateOnly(in.TargetDate)
	plan := domain.DailyPlan{Date: date}

	if in.Profile == nil {
		plan.DayType = domain.DayWeekdayNoClub
		return plan
	}

	rules := ruleset.Sanitize(in.Rules)

	phase := DetectPhase(in.Profile.ExamDate, date, rules.PhaseBands)
	day := AvailableMinutes(in.Profile.Schedule, in.Events, date, in.Profile.StudyStartDate)

	plan.Phase = phase.Name
	plan.DaysLeft = phase.DaysLeft
	plan.DayType = day.DayType
	plan.ClubDay = day.ClubDay
	plan.MatchDay = day.MatchDay
	plan.EventDay = day.EventDay
	plan.AvailableMin = day.AvailableMin

	// Reviews run against the full budget's cap and claim their time
	// first; new learning gets whatever remains.
	reviews := DueReviews(in.History, date, rules.Forgetting)
	reviewMin := 0
	for _, r := range reviews {
		reviewMin += r.EstimatedMin
	}

	remaining := day.AvailableMin - reviewMin
	if remaining < 0 {
		remaining = 0
	}
	// The buffer ratio reserves slack out of new learning only; review
	// time is mandatory.
	remaining -= int(float64(remaining) * rules.General.BufferRatio)

	var newTasks []domain.StudyTask
	if remaining > 0 && len(in.Profile.Subjects) > 0 {
		allocs := AllocateMinutes(in.Profile.Subjects, remaining, phase)
		newTasks = buildNewTasks(allocs, phase, rules, date)
	}

	tasks := append(append([]domain.StudyTask{}, reviews...), newTasks...)
	tasks = ensureContinuity(tasks, in.Profile.Subjects, rules, date)
	tasks = orderTasks(tasks)
	tasks = capToBudget(tasks, day.AvailableMin, rules)

	plan.Tasks = tasks
	return plan
}

// buildNewTasks converts subject allocations into new-learning tasks.
// Minutes are rounded down to whole pomodoro units; a partial pomodoro is
// dropped, not carried over.
func buildNewTasks(allocs []Allocation, phase Phase, rules ruleset.Config, date time.Time) []domain.StudyTask {
	var out []domain.StudyTask
	for i, a := range allocs {
		info := domain.LookupSubject(a.SubjectID)
		pt := pomodoroTypeFor(info)
		workMin := rules.General.WorkMinFor(pt)

		count := a.Minutes / workMin
		if count < 1 {
			count = 1
		}

		out = append(out, domain.StudyTask{
			ID:            newTaskID(date, i, a.SubjectID),
			SubjectID:     a.SubjectID,
			Type:          domain.TaskNew,
			Content:       rules.ContentFor(info.Category, phase.Name),
			PomodoroType:  pt,
			PomodoroCount: count,
			EstimatedMin:  count * workMin,
		})
	}
	return out
}

// pomodoroTypeFor maps a subject's pedagogy onto a pomodoro type. Mixed
// subjects resolve by memorization ratio.
func pomodoroTypeFor(info domain.SubjectInfo) domain.PomodoroType {
	switch info.Pedagogy {
	case domain.PedagogyMemorization:
		return domain.PomodoroMemorization
	case domain.PedagogyMixed:
		if info.MemorizationRatio >= 0.5 {
			return domain.PomodoroMemorization
		}
		return domain.PomodoroThinking
	default:
		return domain.PomodoroThinking
	}
}

// ensureContinuity guarantees each continuity-critical subject in the
// profile at least the daily floor: subjects under it get one extra
// single-pomodoro daily-practice task.
func ensureContinuity(tasks []domain.StudyTask, subjects []domain.SelectedSubject, rules ruleset.Config, date time.Time) []domain.StudyTask {
	perSubject := make(map[string]int)
	for _, t := range tasks {
		perSubject[t.SubjectID] += t.EstimatedMin
	}

	out := tasks
	for _, s := range subjects {
		info := domain.LookupSubject(s.SubjectID)
		if !info.ContinuityCritical || perSubject[s.SubjectID] >= continuityFloorMin {
			continue
		}
		pt := pomodoroTypeFor(info)
		workMin := rules.General.WorkMinFor(pt)
		out = append(out, domain.StudyTask{
			ID:            fmt.Sprintf("dp-%s-%s", domain.FormatDate(date), s.SubjectID),
			SubjectID:     s.SubjectID,
			Type:          domain.TaskNew,
			Content:       fmt.Sprintf("Daily practice: %s", info.Name),
			PomodoroType:  pt,
			PomodoroCount: 1,
			EstimatedMin:  workMin,
		})
	}
	return out
}

// pomodoroPriority orders new-learning work: thinking before processing
// before memorization before exam practice.
func pomodoroPriority(pt domain.PomodoroType) int {
	switch pt {
	case domain.PomodoroThinking:
		return 0
	case domain.PomodoroProcessing:
		return 1
	case domain.PomodoroMemorization:
		return 2
	default:
		return 3
	}
}

// orderTasks places reviews first in their generated order, then the rest
// by pomodoro-type priority. The sort is stable so equal-priority tasks
// keep allocation order.
func orderTasks(tasks []domain.StudyTask) []domain.StudyTask {
	out := make([]domain.StudyTask, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].IsReview(), out[j].IsReview()
		if ri != rj {
			return ri
		}
		if ri {
			return false
		}
		return pomodoroPriority(out[i].PomodoroType) < pomodoroPriority(out[j].PomodoroType)
	})
	return out
}

// capToBudget is the final defense-in-depth pass: the assembled list must
// never exceed the day's available minutes even if an earlier step
// misbehaved.
func capToBudget(tasks []domain.StudyTask, availableMin int, rules ruleset.Config) []domain.StudyTask {
	total := 0
	reviewMin := 0
	for _, t := range tasks {
		total += t.EstimatedMin
		if t.IsReview() {
			reviewMin += t.EstimatedMin
		}
	}
	if total <= availableMin {
		return tasks
	}

	if reviewMin >= availableMin {
		return shrinkReviews(tasks, availableMin, reviewMin)
	}
	return truncateNewTasks(tasks, availableMin, rules)
}

// shrinkReviews scales every review task down proportionally when the
// reviews alone blow the budget; the last surviving review absorbs any
// remainder so the total fits exactly. Non-review tasks are dropped.
func shrinkReviews(tasks []domain.StudyTask, availableMin, reviewMin int) []domain.StudyTask {
	var out []domain.StudyTask
	for _, t := range tasks {
		if !t.IsReview() {
			continue
		}
		scaled := t.EstimatedMin * availableMin / reviewMin
		if scaled <= 0 {
			continue
		}
		t.EstimatedMin = scaled
		out = append(out, t)
	}

	total := 0
	for _, t := range out {
		total += t.EstimatedMin
	}
	if total > availableMin && len(out) > 0 {
		last := &out[len(out)-1]
		last.EstimatedMin -= total - availableMin
		if last.EstimatedMin <= 0 {
			out = out[:len(out)-1]
		}
	}
	return out
}

// truncateNewTasks keeps reviews at full size and greedily truncates the
// non-review tasks in their sorted order to the largest whole-pomodoro
// amount that still fits. Tasks that end up at zero are dropped.
func truncateNewTasks(tasks []domain.StudyTask, availableMin int, rules ruleset.Config) []domain.StudyTask {
	remaining := availableMin
	for _, t := range tasks {
		if t.IsReview() {
			remaining -= t.EstimatedMin
		}
	}

	var out []domain.StudyTask
	for _, t := range tasks {
		if t.IsReview() {
			out = append(out, t)
			continue
		}
		unit := rules.General.WorkMinFor(t.PomodoroType)
		maxCount := 0
		if unit > 0 {
			maxCount = remaining / unit
		}
		count := t.PomodoroCount
		if count > maxCount {
			count = maxCount
		}
		if count <= 0 {
			continue
		}
		t.PomodoroCount = count
		t.EstimatedMin = count * unit
		remaining -= t.EstimatedMin
		out = append(out, t)
	}
	return out
}

// newTaskID derives a deterministic id from the date, allocation index,
// and subject so regeneration reproduces identical plans.
func newTaskID(date time.Time, idx int, subjectID string) string {
	return fmt.Sprintf("new-%s-%d-%s", domain.FormatDate(date), idx, subjectID)
}

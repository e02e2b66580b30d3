package planner

import (
	"testing"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *domain.StudentProfile {
	return &domain.StudentProfile{
		ID:       "default",
		Name:     "Yuki",
		ExamDate: date(2026, 1, 17),
		Schedule: baseSchedule(),
		Subjects: []domain.SelectedSubject{
			selected("eng_r", 40, 85, 4),
			selected("math_1a", 55, 80, 5),
			selected("chemistry", 30, 70, 3),
			selected("history_jp", 45, 80, 2),
		},
	}
}

func testInput(target time.Time) Input {
	return Input{
		Profile:    testProfile(),
		TargetDate: target,
		Rules:      ruleset.Default(),
	}
}

func TestAssemblePlan_Basics(t *testing.T) {
	plan := AssemblePlan(testInput(date(2025, 9, 1)))

	assert.Equal(t, domain.PhaseFoundation, plan.Phase)
	assert.Equal(t, 138, plan.DaysLeft)
	assert.Equal(t, 420, plan.AvailableMin)
	assert.Equal(t, domain.DayWeekdayNoClub, plan.DayType)
	assert.NotEmpty(t, plan.Tasks)
	assert.Zero(t, plan.CompletionRate, "fresh plans report a neutral rate")
}

func TestAssemblePlan_BudgetInvariant(t *testing.T) {
	in := testInput(date(2025, 9, 1))

	completed := date(2025, 8, 31)
	in.History = []domain.StudyTask{
		completedOriginal("eng_r", completed, domain.PomodoroMemorization),
		completedOriginal("math_1a", completed, domain.PomodoroThinking),
	}

	for d := 0; d < 30; d++ {
		in.TargetDate = date(2025, 9, 1).AddDate(0, 0, d)
		plan := AssemblePlan(in)
		assert.LessOrEqual(t, plan.TotalEstimatedMin(), plan.AvailableMin,
			"date %s", plan.DateKey())
	}
}

func TestAssemblePlan_Deterministic(t *testing.T) {
	in := testInput(date(2025, 9, 1))
	in.Events = []domain.EventDate{{
		ID: "ev1", Title: "Mock exam", Type: domain.EventMockExam,
		StartDate: date(2025, 9, 3), DurationDays: 1,
	}}
	in.History = []domain.StudyTask{
		completedOriginal("eng_r", date(2025, 8, 31), domain.PomodoroMemorization),
	}

	first := AssemblePlan(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AssemblePlan(in), "regeneration must be idempotent, ids included")
	}
}

func TestAssemblePlan_ReviewsComeFirst(t *testing.T) {
	in := testInput(date(2025, 9, 1))
	in.History = []domain.StudyTask{
		completedOriginal("chemistry", date(2025, 8, 31), domain.PomodoroMemorization),
	}

	plan := AssemblePlan(in)

	require.NotEmpty(t, plan.Tasks)
	assert.True(t, plan.Tasks[0].IsReview(), "review tasks lead the plan")
	assert.Equal(t, domain.TaskReview, plan.Tasks[0].Type)

	// After the reviews, thinking work precedes memorization work.
	seenMemorization := false
	for _, task := range plan.Tasks {
		if task.IsReview() {
			continue
		}
		if task.PomodoroType == domain.PomodoroMemorization {
			seenMemorization = true
		}
		if task.PomodoroType == domain.PomodoroThinking {
			assert.False(t, seenMemorization, "thinking tasks sort before memorization")
		}
	}
}

func TestAssemblePlan_ContinuityDailyPractice(t *testing.T) {
	in := testInput(date(2025, 9, 1))

	plan := AssemblePlan(in)

	perSubject := make(map[string]int)
	for _, task := range plan.Tasks {
		perSubject[task.SubjectID] += task.EstimatedMin
	}
	assert.GreaterOrEqual(t, perSubject["eng_r"], 15)
	assert.GreaterOrEqual(t, perSubject["math_1a"], 15)
}

func TestAssemblePlan_MatchDayStillScheduled(t *testing.T) {
	// A Saturday match caps the day at 60 minutes but the plan still
	// fits what it can.
	in := testInput(date(2025, 9, 6))
	in.Events = []domain.EventDate{{
		ID: "m1", Title: "Tennis match", Type: domain.EventMatch,
		StartDate: date(2025, 9, 6), DurationDays: 1,
	}}

	plan := AssemblePlan(in)

	assert.True(t, plan.MatchDay)
	assert.Equal(t, 60, plan.AvailableMin)
	assert.LessOrEqual(t, plan.TotalEstimatedMin(), 60)
}

func TestAssemblePlan_NilProfile(t *testing.T) {
	plan := AssemblePlan(Input{TargetDate: date(2025, 9, 1), Rules: ruleset.Default()})

	assert.Equal(t, 0, plan.AvailableMin)
	assert.Empty(t, plan.Tasks)
}

func TestAssemblePlan_NoSubjects(t *testing.T) {
	in := testInput(date(2025, 9, 1))
	in.Profile.Subjects = nil

	plan := AssemblePlan(in)

	assert.Empty(t, plan.Tasks)
	assert.Equal(t, 420, plan.AvailableMin)
}

func TestAssemblePlan_ZeroAvailability(t *testing.T) {
	in := testInput(date(2025, 9, 1))
	start := date(2025, 10, 1)
	in.Profile.StudyStartDate = &start

	plan := AssemblePlan(in)

	assert.Equal(t, 0, plan.AvailableMin)
	assert.Empty(t, plan.Tasks)
}

func TestAssemblePlan_ReviewsExceedingBudgetAreScaled(t *testing.T) {
	in := testInput(date(2025, 9, 6))
	in.Events = []domain.EventDate{{
		ID: "ev", Title: "School festival", Type: domain.EventSchool,
		StartDate: date(2025, 9, 6), DurationDays: 1,
	}}

	// Event day caps availability at 30 minutes; two thinking reviews
	// due today would claim 60.
	in.History = []domain.StudyTask{
		completedOriginal("math_1a", date(2025, 9, 5), domain.PomodoroThinking),
		completedOriginal("physics", date(2025, 9, 5), domain.PomodoroThinking),
	}

	plan := AssemblePlan(in)

	assert.Equal(t, 30, plan.AvailableMin)
	assert.LessOrEqual(t, plan.TotalEstimatedMin(), 30)
	for _, task := range plan.Tasks {
		assert.True(t, task.IsReview(), "only scaled reviews survive a review-saturated day")
	}
}

func TestAssemblePlan_MalformedRulesDegrade(t *testing.T) {
	in := testInput(date(2025, 9, 1))
	in.Rules = ruleset.Config{} // structurally empty snapshot

	plan := AssemblePlan(in)

	assert.Equal(t, domain.PhaseFoundation, plan.Phase, "bands fall back to defaults")
	assert.LessOrEqual(t, plan.TotalEstimatedMin(), plan.AvailableMin)
}

func TestAssemblePlan_NewTasksUseWholePomodoros(t *testing.T) {
	plan := AssemblePlan(testInput(date(2025, 9, 1)))

	for _, task := range plan.Tasks {
		if task.IsReview() {
			continue
		}
		unit := ruleset.Default().General.WorkMinFor(task.PomodoroType)
		assert.Equal(t, task.PomodoroCount*unit, task.EstimatedMin,
			"task %s minutes must be whole pomodoro units", task.ID)
	}
}

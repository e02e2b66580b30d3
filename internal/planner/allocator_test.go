package planner

import (
	"testing"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func foundationPhase() Phase {
	return Phase{Name: domain.PhaseFoundation, DaysLeft: 138}
}

func selected(id string, current, target, difficulty int) domain.SelectedSubject {
	return domain.SelectedSubject{
		SubjectID: id, CurrentScore: current, TargetScore: target, Difficulty: difficulty,
	}
}

func allocTotal(allocs []Allocation) int {
	total := 0
	for _, a := range allocs {
		total += a.Minutes
	}
	return total
}

func TestAllocateMinutes_EmptyInputs(t *testing.T) {
	assert.Nil(t, AllocateMinutes(nil, 300, foundationPhase()))
	assert.Nil(t, AllocateMinutes([]domain.SelectedSubject{selected("eng_r", 50, 80, 3)}, 0, foundationPhase()))
}

func TestAllocateMinutes_BudgetNeverExceeded(t *testing.T) {
	subjects := []domain.SelectedSubject{
		selected("eng_r", 40, 85, 4),
		selected("math_1a", 55, 80, 5),
		selected("japanese", 60, 75, 2),
		selected("chemistry", 30, 70, 3),
		selected("history_jp", 45, 80, 2),
	}

	for _, budget := range []int{30, 60, 120, 240, 420, 900} {
		allocs := AllocateMinutes(subjects, budget, foundationPhase())
		assert.LessOrEqual(t, allocTotal(allocs), budget, "budget %d", budget)
	}
}

func TestAllocateMinutes_ContinuityFloor(t *testing.T) {
	subjects := []domain.SelectedSubject{
		selected("eng_r", 40, 85, 4),
		selected("math_1a", 55, 80, 5),
		selected("history_jp", 45, 80, 2),
		selected("geography", 45, 80, 2),
	}

	allocs := AllocateMinutes(subjects, 240, foundationPhase())

	byID := make(map[string]int)
	for _, a := range allocs {
		byID[a.SubjectID] = a.Minutes
	}
	assert.GreaterOrEqual(t, byID["eng_r"], 15)
	assert.GreaterOrEqual(t, byID["math_1a"], 15)
}

func TestAllocateMinutes_NoSubjectOverQuarterBeforeReconcile(t *testing.T) {
	// The 25% cap applies before drift reconciliation, so only the
	// reconciliation target may end up above a quarter of the budget.
	subjects := []domain.SelectedSubject{
		selected("eng_r", 40, 85, 4),
		selected("math_1a", 55, 80, 5),
		selected("japanese", 60, 75, 2),
		selected("chemistry", 30, 70, 3),
		selected("history_jp", 45, 80, 2),
		selected("physics", 45, 80, 3),
	}

	allocs := AllocateMinutes(subjects, 400, foundationPhase())

	over := 0
	for _, a := range allocs {
		if a.Minutes > 100 {
			over++
		}
	}
	assert.LessOrEqual(t, over, 1)
}

func TestAllocateMinutes_ZeroScoresEqualSplit(t *testing.T) {
	scores := []float64{0, 0}
	subjects := []domain.SelectedSubject{
		selected("eng_r", 50, 50, 3),
		selected("math_1a", 50, 50, 3),
	}

	allocs := normalize(subjects, scores, 101)

	require.Len(t, allocs, 2)
	assert.Equal(t, 50, allocs[0].Minutes, "equal split uses floor division")
	assert.Equal(t, 50, allocs[1].Minutes)
}

func TestAllocationPasses_CapThenReconcileOrder(t *testing.T) {
	// Raw scores 0.6/0.4 over 100 minutes: 60/40, both capped to 25,
	// then the 50-minute drift lands on the first continuity-critical
	// subject. The pass order is load-bearing; alternate orderings give
	// different splits.
	subjects := []domain.SelectedSubject{
		selected("eng_r", 40, 85, 4),
		selected("history_jp", 45, 80, 2),
	}
	scores := []float64{0.6, 0.4}

	allocs := normalize(subjects, scores, 100)
	assert.Equal(t, []Allocation{{"eng_r", 60}, {"history_jp", 40}}, allocs)

	allocs = capShares(allocs, 100)
	assert.Equal(t, []Allocation{{"eng_r", 25}, {"history_jp", 25}}, allocs)

	allocs = reconcileDrift(allocs, 100)
	assert.Equal(t, []Allocation{{"eng_r", 75}, {"history_jp", 25}}, allocs)
	assert.Equal(t, 100, allocTotal(allocs))
}

func TestReconcileDrift_FallsBackToFirstSubject(t *testing.T) {
	allocs := []Allocation{{"history_jp", 20}, {"geography", 20}}

	out := reconcileDrift(allocs, 50)

	assert.Equal(t, 30, out[0].Minutes)
	assert.Equal(t, 20, out[1].Minutes)
}

func TestShrinkToBudget_RoundRobinOverNonCritical(t *testing.T) {
	allocs := []Allocation{
		{"eng_r", 15},      // critical: untouchable
		{"history_jp", 10}, // non-critical
		{"geography", 10},  // non-critical
	}

	out := shrinkToBudget(allocs, 30)

	// 5 excess minutes removed alternately: history 10->7, geography 10->8.
	assert.Equal(t, 15, out[0].Minutes)
	assert.Equal(t, 7, out[1].Minutes)
	assert.Equal(t, 8, out[2].Minutes)
	assert.Equal(t, 30, allocTotal(out))
}

func TestShrinkToBudget_NeverReducesBelowZero(t *testing.T) {
	allocs := []Allocation{
		{"eng_r", 15},
		{"history_jp", 2},
	}

	out := shrinkToBudget(allocs, 10)

	assert.Equal(t, 15, out[0].Minutes, "critical subjects are never reduced")
	assert.Equal(t, 0, out[1].Minutes)
}

func TestAllocateMinutes_DropsZeroMinuteSubjects(t *testing.T) {
	subjects := []domain.SelectedSubject{
		selected("eng_r", 40, 85, 4),
		selected("math_1a", 55, 80, 5),
		selected("history_jp", 45, 80, 2),
	}

	allocs := AllocateMinutes(subjects, 30, foundationPhase())

	for _, a := range allocs {
		assert.Greater(t, a.Minutes, 0)
	}
}

func TestAllocateMinutes_Deterministic(t *testing.T) {
	subjects := []domain.SelectedSubject{
		selected("eng_r", 40, 85, 4),
		selected("math_1a", 55, 80, 5),
		selected("chemistry", 30, 70, 3),
	}

	first := AllocateMinutes(subjects, 300, foundationPhase())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AllocateMinutes(subjects, 300, foundationPhase()))
	}
}

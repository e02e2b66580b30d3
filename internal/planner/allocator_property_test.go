package planner

import (
	"math/rand"
	"testing"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestAllocateMinutes_Invariants property-tests the allocator over random
// subject mixes: the budget may only be exceeded by the continuity floor
// itself, no negative minutes ever appear, and critical subjects present
// in the output always hold the floor.
func TestAllocateMinutes_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	pool := []string{
		"eng_r", "eng_l", "math_1a", "math_2b", "japanese",
		"physics", "chemistry", "biology", "geography", "history_jp",
	}
	phases := []Phase{
		{Name: domain.PhaseFoundation},
		{Name: domain.PhasePractice},
		{Name: domain.PhaseFinal},
	}

	for trial := 0; trial < 300; trial++ {
		budget := rng.Intn(600) + 1
		n := rng.Intn(len(pool)) + 1
		subjects := make([]domain.SelectedSubject, n)
		for i := 0; i < n; i++ {
			info := domain.LookupSubject(pool[i])
			current := rng.Intn(info.MaxScore + 1)
			subjects[i] = domain.SelectedSubject{
				SubjectID:    pool[i],
				CurrentScore: current,
				TargetScore:  current + rng.Intn(info.MaxScore-current+1),
				Difficulty:   rng.Intn(5) + 1,
			}
		}
		phase := phases[rng.Intn(len(phases))]

		allocs := AllocateMinutes(subjects, budget, phase)

		total := 0
		criticalOut := 0
		for _, a := range allocs {
			assert.Greater(t, a.Minutes, 0, "trial %d: zero allocations must be dropped", trial)
			total += a.Minutes
			if domain.IsContinuityCritical(a.SubjectID) {
				criticalOut++
				assert.GreaterOrEqual(t, a.Minutes, continuityFloorMin,
					"trial %d: critical subject %s below floor", trial, a.SubjectID)
			}
		}

		// The only way past the budget is the floor bump on critical
		// subjects: the shrink pass zeroes every non-critical subject
		// before it ever gives up, so an over-budget result may contain
		// critical subjects only.
		if total > budget {
			assert.Equal(t, criticalOut, len(allocs),
				"trial %d: over budget (%d > %d) with non-critical subjects still present", trial, total, budget)
		}
	}
}

// TestAllocateMinutes_OrderIndependentOfExtraCalls verifies the allocator
// has no hidden state: interleaved calls with other inputs never change a
// result.
func TestAllocateMinutes_OrderIndependentOfExtraCalls(t *testing.T) {
	a := []domain.SelectedSubject{selected("eng_r", 40, 85, 4), selected("chemistry", 30, 70, 3)}
	b := []domain.SelectedSubject{selected("math_1a", 55, 80, 5)}

	want := AllocateMinutes(a, 200, foundationPhase())
	AllocateMinutes(b, 77, Phase{Name: domain.PhaseFinal})
	assert.Equal(t, want, AllocateMinutes(a, 200, foundationPhase()))
}

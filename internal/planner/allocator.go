package planner

import (
	"math"

	"github.com/hsato/studyplan/internal/domain"
)

// Scoring weights for the five allocation factors.
const (
	weightDifficulty = 0.30
	weightScoreShare = 0.20
	weightGrowth     = 0.25
	weightEfficiency = 0.15
	weightContinuity = 0.10

	// No single subject may consume more than a quarter of the budget.
	subjectCapRatio = 0.25
	// Continuity-critical subjects are guaranteed at least this much.
	continuityFloorMin = 15
)

// Allocation is one subject's share of the new-learning budget.
type Allocation struct {
	SubjectID string
	Minutes   int
}

// AllocateMinutes splits availableMin across the selected subjects using a
// weighted heuristic score. It is a scoring model, not a solver: the
// passes below run in a fixed order (normalize, cap, reconcile, floor,
// shrink, drop) and each derives a fresh slice from the previous one so
// the intermediate states never alias.
//
// The input order of subjects is load-bearing: the rounding-drift
// reconciliation and the round-robin shrink both tie-break by profile
// insertion order.
func AllocateMinutes(subjects []domain.SelectedSubject, availableMin int, phase Phase) []Allocation {
	if len(subjects) == 0 || availableMin <= 0 {
		return nil
	}

	scores := rawScores(subjects, phase)
	allocs := normalize(subjects, scores, availableMin)
	allocs = capShares(allocs, availableMin)
	allocs = reconcileDrift(allocs, availableMin)
	allocs = enforceFloor(allocs)
	allocs = shrinkToBudget(allocs, availableMin)
	return dropEmpty(allocs)
}

func rawScores(subjects []domain.SelectedSubject, phase Phase) []float64 {
	totalMax := 0
	for _, s := range subjects {
		totalMax += domain.LookupSubject(s.SubjectID).MaxScore
	}

	scores := make([]float64, len(subjects))
	for i, s := range subjects {
		info := domain.LookupSubject(s.SubjectID)

		difficulty := float64(6-s.Difficulty) / 5
		scoreShare := 0.0
		if totalMax > 0 {
			scoreShare = float64(info.MaxScore) / float64(totalMax)
		}
		growth := math.Max(0, float64(s.TargetScore-s.CurrentScore)) / 100

		efficiency := 0.9
		switch {
		case phase.Name == domain.PhaseFinal && info.CrammingEffective:
			efficiency = 1.2
		case info.Pedagogy == domain.PedagogyThinking:
			efficiency = 1.0
		}

		continuity := 0.3
		if info.ContinuityCritical {
			continuity = 1.0
		}

		scores[i] = weightDifficulty*difficulty +
			weightScoreShare*scoreShare +
			weightGrowth*growth +
			weightEfficiency*efficiency +
			weightContinuity*continuity
	}
	return scores
}

// normalize distributes the budget proportionally to raw scores. A zero
// score total falls back to an equal floor-division split.
func normalize(subjects []domain.SelectedSubject, scores []float64, availableMin int) []Allocation {
	total := 0.0
	for _, s := range scores {
		total += s
	}

	allocs := make([]Allocation, len(subjects))
	for i, s := range subjects {
		minutes := 0
		if total > 0 {
			minutes = int(math.Round(scores[i] / total * float64(availableMin)))
		} else {
			minutes = availableMin / len(subjects)
		}
		allocs[i] = Allocation{SubjectID: s.SubjectID, Minutes: minutes}
	}
	return allocs
}

func capShares(allocs []Allocation, availableMin int) []Allocation {
	capMin := int(math.Floor(float64(availableMin) * subjectCapRatio))
	out := make([]Allocation, len(allocs))
	for i, a := range allocs {
		if a.Minutes > capMin {
			a.Minutes = capMin
		}
		out[i] = a
	}
	return out
}

// reconcileDrift pushes the rounding difference (positive or negative)
// onto the first continuity-critical subject, or the first subject when
// none is critical.
func reconcileDrift(allocs []Allocation, availableMin int) []Allocation {
	total := 0
	for _, a := range allocs {
		total += a.Minutes
	}
	diff := availableMin - total
	if diff == 0 || len(allocs) == 0 {
		return allocs
	}

	target := 0
	for i, a := range allocs {
		if domain.IsContinuityCritical(a.SubjectID) {
			target = i
			break
		}
	}

	out := make([]Allocation, len(allocs))
	copy(out, allocs)
	out[target].Minutes += diff
	if out[target].Minutes < 0 {
		out[target].Minutes = 0
	}
	return out
}

// enforceFloor bumps every continuity-critical subject to at least the
// 15-minute daily floor. This can push the total over budget; the shrink
// pass restores it.
func enforceFloor(allocs []Allocation) []Allocation {
	out := make([]Allocation, len(allocs))
	for i, a := range allocs {
		if domain.IsContinuityCritical(a.SubjectID) && a.Minutes < continuityFloorMin {
			a.Minutes = continuityFloorMin
		}
		out[i] = a
	}
	return out
}

// shrinkToBudget removes any excess one minute at a time, round-robin over
// the non-critical subjects in list order. Critical subjects are never
// reduced here.
func shrinkToBudget(allocs []Allocation, availableMin int) []Allocation {
	total := 0
	for _, a := range allocs {
		total += a.Minutes
	}
	excess := total - availableMin
	if excess <= 0 {
		return allocs
	}

	out := make([]Allocation, len(allocs))
	copy(out, allocs)

	var reducible []int
	for i, a := range out {
		if !domain.IsContinuityCritical(a.SubjectID) {
			reducible = append(reducible, i)
		}
	}
	if len(reducible) == 0 {
		return out
	}

	for cursor := 0; excess > 0; cursor = (cursor + 1) % len(reducible) {
		idx := reducible[cursor]
		if out[idx].Minutes > 0 {
			out[idx].Minutes--
			excess--
			continue
		}
		// All reducible subjects already at zero: nothing left to take.
		if allZero(out, reducible) {
			break
		}
	}
	return out
}

func allZero(allocs []Allocation, idxs []int) bool {
	for _, i := range idxs {
		if allocs[i].Minutes > 0 {
			return false
		}
	}
	return true
}

func dropEmpty(allocs []Allocation) []Allocation {
	out := make([]Allocation, 0, len(allocs))
	for _, a := range allocs {
		if a.Minutes > 0 {
			out = append(out, a)
		}
	}
	return out
}

package planner

import (
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/ruleset"
)

// Fixed per-pomodoro-type review durations, independent of the original
// task's actual length.
const (
	reviewMemorizationMin = 20
	reviewProcessingMin   = 25
	reviewDefaultMin      = 30
)

// seriesKey identifies one review series: the chain of reviews traceable
// to a single original learning event.
type seriesKey struct {
	subjectID    string
	originalDate string
}

// DueReviews returns the review tasks due on targetDate, derived from the
// completed-task history and the forgetting-curve settings.
//
// The scheduler answers "what is due today", not "what is overdue": a
// review whose due date passed without the plan being generated is never
// surfaced again.
func DueReviews(history []domain.StudyTask, targetDate time.Time, fc ruleset.ForgettingCurve) []domain.StudyTask {
	if len(fc.IntervalsDays) == 0 {
		return nil
	}

	completedNums := completedReviewNumbers(history)

	var out []domain.StudyTask
	totalMin := 0

	// Originals are walked in history order; within a series, intervals
	// ascend, so output order is deterministic for fixed input order.
	for _, orig := range history {
		if !orig.Completed || orig.IsReview() || orig.CompletedAt == nil {
			continue
		}
		originalDate := domain.DateOnly(*orig.CompletedAt)
		key := seriesKey{orig.SubjectID, domain.FormatDate(originalDate)}
		done := completedNums[key]

		if graduated(done, fc.GraduationCount) {
			continue
		}

		for i, days := range fc.IntervalsDays {
			reviewNum := i + 1
			if done[reviewNum] {
				continue
			}
			due := originalDate.AddDate(0, 0, days)
			if !due.Equal(domain.DateOnly(targetDate)) {
				continue
			}

			est := reviewMinutes(orig.PomodoroType)
			if totalMin+est > fc.MaxDailyReviewMin {
				// Defer this series' larger intervals; other series
				// keep their own chance at the remaining budget.
				break
			}
			totalMin += est

			out = append(out, domain.StudyTask{
				ID:            reviewTaskID(orig.SubjectID, originalDate, reviewNum, targetDate),
				SubjectID:     orig.SubjectID,
				Type:          domain.TaskReview,
				Content:       fmt.Sprintf("[Review #%d] %s", reviewNum, orig.Content),
				PomodoroType:  orig.PomodoroType,
				PomodoroCount: 1,
				EstimatedMin:  est,
				ReviewSource: &domain.ReviewSource{
					OriginalDate: originalDate,
					ReviewNumber: reviewNum,
				},
			})
		}
	}
	return out
}

// completedReviewNumbers indexes history by series: which review numbers
// have been completed for each (subject, original date) pair. A review's
// series key comes from its own ReviewSource, tying every review in a
// chain back to the same original learning event.
func completedReviewNumbers(history []domain.StudyTask) map[seriesKey]map[int]bool {
	out := make(map[seriesKey]map[int]bool)
	for _, t := range history {
		if !t.Completed || !t.IsReview() {
			continue
		}
		key := seriesKey{t.SubjectID, domain.FormatDate(domain.DateOnly(t.ReviewSource.OriginalDate))}
		if out[key] == nil {
			out[key] = make(map[int]bool)
		}
		out[key][t.ReviewSource.ReviewNumber] = true
	}
	return out
}

// graduated reports whether reviews 1..graduationCount form a contiguous
// completed run. A graduated series never generates another review, even
// when later intervals were skipped.
func graduated(done map[int]bool, graduationCount int) bool {
	if graduationCount < 1 {
		return false
	}
	for n := 1; n <= graduationCount; n++ {
		if !done[n] {
			return false
		}
	}
	return true
}

func reviewMinutes(pt domain.PomodoroType) int {
	switch pt {
	case domain.PomodoroMemorization:
		return reviewMemorizationMin
	case domain.PomodoroProcessing:
		return reviewProcessingMin
	default:
		return reviewDefaultMin
	}
}

// reviewTaskID derives a deterministic id so regenerating a date's plan
// reproduces identical review tasks.
func reviewTaskID(subjectID string, originalDate time.Time, reviewNum int, targetDate time.Time) string {
	return fmt.Sprintf("rev-%s-%s-%d-%s",
		subjectID, domain.FormatDate(originalDate), reviewNum, domain.FormatDate(targetDate))
}

package planner

import (
	"testing"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fcDefaults() ruleset.ForgettingCurve {
	return ruleset.ForgettingCurve{
		IntervalsDays:     []int{1, 3, 7, 14, 30},
		MaxDailyReviewMin: 60,
		GraduationCount:   3,
	}
}

func completedOriginal(subjectID string, completedAt time.Time, pt domain.PomodoroType) domain.StudyTask {
	return domain.StudyTask{
		ID:           "hist-" + subjectID + "-" + domain.FormatDate(completedAt),
		SubjectID:    subjectID,
		Type:         domain.TaskNew,
		Content:      "Chapter work",
		PomodoroType: pt,
		Completed:    true,
		CompletedAt:  &completedAt,
	}
}

func completedReview(subjectID string, originalDate, completedAt time.Time, num int) domain.StudyTask {
	return domain.StudyTask{
		ID:           "histrev",
		SubjectID:    subjectID,
		Type:         domain.TaskReview,
		PomodoroType: domain.PomodoroThinking,
		Completed:    true,
		CompletedAt:  &completedAt,
		ReviewSource: &domain.ReviewSource{OriginalDate: originalDate, ReviewNumber: num},
	}
}

func TestDueReviews_FirstIntervalDue(t *testing.T) {
	orig := date(2025, 9, 1)
	history := []domain.StudyTask{completedOriginal("eng_r", orig, domain.PomodoroMemorization)}

	due := DueReviews(history, date(2025, 9, 2), fcDefaults())

	require.Len(t, due, 1)
	assert.Equal(t, "rev-eng_r-2025-09-01-1-2025-09-02", due[0].ID)
	assert.Equal(t, domain.TaskReview, due[0].Type)
	assert.Equal(t, "[Review #1] Chapter work", due[0].Content)
	assert.Equal(t, 20, due[0].EstimatedMin, "memorization reviews are 20 minutes")
	assert.Equal(t, 1, due[0].PomodoroCount)
	assert.False(t, due[0].Completed)
	require.NotNil(t, due[0].ReviewSource)
	assert.Equal(t, 1, due[0].ReviewSource.ReviewNumber)
}

func TestDueReviews_NothingDueOffInterval(t *testing.T) {
	history := []domain.StudyTask{completedOriginal("eng_r", date(2025, 9, 1), domain.PomodoroThinking)}

	assert.Empty(t, DueReviews(history, date(2025, 9, 3), fcDefaults()))
	assert.Empty(t, DueReviews(history, date(2025, 9, 1), fcDefaults()))
}

func TestDueReviews_GraduationStopsSeries(t *testing.T) {
	orig := date(2025, 9, 1)
	history := []domain.StudyTask{
		completedOriginal("eng_r", orig, domain.PomodoroThinking),
		completedReview("eng_r", orig, date(2025, 9, 2), 1),
		completedReview("eng_r", orig, date(2025, 9, 4), 2),
		completedReview("eng_r", orig, date(2025, 9, 8), 3),
	}

	// Review #4 would be due on 09-15 (14-day interval) but the series
	// graduated after the contiguous 1..3 run.
	assert.Empty(t, DueReviews(history, date(2025, 9, 15), fcDefaults()))
	assert.Empty(t, DueReviews(history, date(2025, 10, 1), fcDefaults()))
}

func TestDueReviews_NonContiguousRunDoesNotGraduate(t *testing.T) {
	orig := date(2025, 9, 1)
	history := []domain.StudyTask{
		completedOriginal("eng_r", orig, domain.PomodoroThinking),
		completedReview("eng_r", orig, date(2025, 9, 4), 2),
		completedReview("eng_r", orig, date(2025, 9, 8), 3),
	}

	// #1 was never completed, so the series is still live; #4 is due on
	// the 14-day interval.
	due := DueReviews(history, date(2025, 9, 15), fcDefaults())
	require.Len(t, due, 1)
	assert.Equal(t, 4, due[0].ReviewSource.ReviewNumber)
}

func TestDueReviews_CompletedReviewNotResurfaced(t *testing.T) {
	orig := date(2025, 9, 1)
	history := []domain.StudyTask{
		completedOriginal("eng_r", orig, domain.PomodoroThinking),
		completedReview("eng_r", orig, date(2025, 9, 2), 1),
	}

	assert.Empty(t, DueReviews(history, date(2025, 9, 2), fcDefaults()))
}

func TestDueReviews_NoBacklogCatchUp(t *testing.T) {
	// Review #1 was due 09-02 and never completed. On 09-03 nothing is
	// surfaced: the scheduler answers "due today", not "overdue".
	history := []domain.StudyTask{completedOriginal("eng_r", date(2025, 9, 1), domain.PomodoroThinking)}

	assert.Empty(t, DueReviews(history, date(2025, 9, 3), fcDefaults()))
}

func TestDueReviews_DailyCapBreaksSeriesNotOthers(t *testing.T) {
	fc := fcDefaults()
	fc.MaxDailyReviewMin = 50

	// Both originals completed the same day, both due for review #1 on
	// the next day at 30 minutes each. The first fits; adding the second
	// original's review would exceed 50, but the cap break only defers
	// intervals of the blocked series, so each series is still evaluated.
	orig := date(2025, 9, 1)
	history := []domain.StudyTask{
		completedOriginal("math_1a", orig, domain.PomodoroThinking),
		completedOriginal("physics", orig, domain.PomodoroThinking),
		completedOriginal("chemistry", orig, domain.PomodoroMemorization),
	}

	due := DueReviews(history, date(2025, 9, 2), fc)

	// math_1a (30) fits; physics (30) would hit 60 > 50 and is cut;
	// chemistry (20) fits at 50 exactly.
	require.Len(t, due, 2)
	assert.Equal(t, "math_1a", due[0].SubjectID)
	assert.Equal(t, "chemistry", due[1].SubjectID)
}

func TestDueReviews_EmptyIntervalsScheduleNothing(t *testing.T) {
	history := []domain.StudyTask{completedOriginal("eng_r", date(2025, 9, 1), domain.PomodoroThinking)}
	fc := ruleset.ForgettingCurve{GraduationCount: 3}

	assert.Empty(t, DueReviews(history, date(2025, 9, 2), fc))
}

func TestDueReviews_Deterministic(t *testing.T) {
	orig := date(2025, 9, 1)
	history := []domain.StudyTask{
		completedOriginal("eng_r", orig, domain.PomodoroMemorization),
		completedOriginal("math_1a", orig, domain.PomodoroThinking),
	}

	first := DueReviews(history, date(2025, 9, 2), fcDefaults())
	second := DueReviews(history, date(2025, 9, 2), fcDefaults())
	assert.Equal(t, first, second)
}

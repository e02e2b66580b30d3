package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func samplePlan(date time.Time) domain.DailyPlan {
	return domain.DailyPlan{
		Date:         date,
		Phase:        domain.PhaseFoundation,
		DaysLeft:     138,
		DayType:      domain.DayWeekdayNoClub,
		AvailableMin: 420,
		Tasks: []domain.StudyTask{
			{
				ID: "rev-eng_r-2025-08-31-1-" + domain.FormatDate(date), SubjectID: "eng_r",
				Type: domain.TaskReview, Content: "[Review #1] Chapter work",
				PomodoroType: domain.PomodoroMemorization, PomodoroCount: 1, EstimatedMin: 20,
				ReviewSource: &domain.ReviewSource{OriginalDate: day(2025, 8, 31), ReviewNumber: 1},
			},
			{
				ID: "new-" + domain.FormatDate(date) + "-0-math_1a", SubjectID: "math_1a",
				Type: domain.TaskNew, Content: "Core textbook examples and exercises",
				PomodoroType: domain.PomodoroThinking, PomodoroCount: 3, EstimatedMin: 90,
			},
		},
	}
}

func TestPlanRepo_PutGetRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	plan := samplePlan(day(2025, 9, 1))
	require.NoError(t, repo.Put(ctx, plan))

	got, err := repo.Get(ctx, day(2025, 9, 1))
	require.NoError(t, err)

	assert.Equal(t, plan.Date, got.Date)
	assert.Equal(t, plan.Phase, got.Phase)
	assert.Equal(t, plan.AvailableMin, got.AvailableMin)
	assert.Equal(t, plan.Tasks, got.Tasks)
}

func TestPlanRepo_PutReplacesExisting(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, samplePlan(day(2025, 9, 1))))

	replacement := samplePlan(day(2025, 9, 1))
	replacement.Tasks = replacement.Tasks[:1]
	replacement.AvailableMin = 60
	require.NoError(t, repo.Put(ctx, replacement))

	got, err := repo.Get(ctx, day(2025, 9, 1))
	require.NoError(t, err)
	assert.Len(t, got.Tasks, 1)
	assert.Equal(t, 60, got.AvailableMin)
}

func TestPlanRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)

	_, err := repo.Get(context.Background(), day(2025, 9, 1))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPlanRepo_DeleteFromKeepsPast(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	for d := 1; d <= 5; d++ {
		require.NoError(t, repo.Put(ctx, samplePlan(day(2025, 9, d))))
	}

	require.NoError(t, repo.DeleteFrom(ctx, day(2025, 9, 3)))

	for d := 1; d <= 2; d++ {
		_, err := repo.Get(ctx, day(2025, 9, d))
		assert.NoError(t, err, "past plan %d must survive", d)
	}
	for d := 3; d <= 5; d++ {
		_, err := repo.Get(ctx, day(2025, 9, d))
		assert.True(t, errors.Is(err, ErrNotFound), "plan %d must be invalidated", d)
	}
}

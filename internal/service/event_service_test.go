package service

import (
	"context"
	"testing"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_AddInvalidatesCoveredPlans(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	today := day(2025, 9, 1)
	seedProfile(t, app, today)

	saturday := day(2025, 9, 6)
	before, err := app.Plans.Plan(ctx, saturday)
	require.NoError(t, err)
	require.False(t, before.MatchDay)

	ev := &domain.EventDate{
		Title: "Practice match", Type: domain.EventMatch,
		StartDate: saturday, DurationDays: 1,
	}
	require.NoError(t, app.Events.Add(ctx, ev, today))
	assert.NotEmpty(t, ev.ID, "an id is assigned on insert")

	after, err := app.Plans.Plan(ctx, saturday)
	require.NoError(t, err)
	assert.True(t, after.MatchDay)
	assert.Equal(t, 60, after.AvailableMin)
}

func TestEventService_AddNeverTouchesPastPlans(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	today := day(2025, 9, 3)
	seedProfile(t, app, today)

	monday := day(2025, 9, 1)
	past, err := app.Plans.Plan(ctx, monday)
	require.NoError(t, err)

	// Backdated event: invalidation starts at today, not at the event.
	ev := &domain.EventDate{
		Title: "Regular test week", Type: domain.EventRegularTest,
		StartDate: monday, DurationDays: 5,
	}
	require.NoError(t, app.Events.Add(ctx, ev, today))

	pastAgain, err := app.Plans.Plan(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, past, pastAgain)
}

func TestEventService_RemoveInvalidates(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	today := day(2025, 9, 1)
	seedProfile(t, app, today)

	saturday := day(2025, 9, 6)
	ev := &domain.EventDate{
		Title: "Tournament", Type: domain.EventMatch,
		StartDate: saturday, DurationDays: 1,
	}
	require.NoError(t, app.Events.Add(ctx, ev, today))

	capped, err := app.Plans.Plan(ctx, saturday)
	require.NoError(t, err)
	require.True(t, capped.MatchDay)

	require.NoError(t, app.Events.Remove(ctx, ev.ID, today))

	restored, err := app.Plans.Plan(ctx, saturday)
	require.NoError(t, err)
	assert.False(t, restored.MatchDay)
	assert.Greater(t, restored.AvailableMin, 60)
}

func TestEventService_AddValidation(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	today := day(2025, 9, 1)

	err := app.Events.Add(ctx, &domain.EventDate{Type: domain.EventMatch, StartDate: today}, today)
	assert.ErrorContains(t, err, "title")

	err = app.Events.Add(ctx, &domain.EventDate{Title: "??", Type: "festival", StartDate: today}, today)
	assert.ErrorContains(t, err, "event type")

	// Zero duration is normalized to a single day.
	ev := &domain.EventDate{Title: "Mock exam", Type: domain.EventMockExam, StartDate: today}
	require.NoError(t, app.Events.Add(ctx, ev, today))
	assert.Equal(t, 1, ev.DurationDays)
}

package service

import (
	"context"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/ruleset"
)

// PlanService generates and caches daily plans. All dates are explicit
// inputs; no service reads the wall clock while computing a plan.
type PlanService interface {
	// Plan returns the cached plan for date, generating and storing it
	// on first request.
	Plan(ctx context.Context, date time.Time) (*domain.DailyPlan, error)
	// Regenerate recomputes the plan for date from current
	// configuration, fully replacing any cached entry.
	Regenerate(ctx context.Context, date time.Time) (*domain.DailyPlan, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.StudentProfile, error)
	// Save validates and stores the profile, then invalidates cached
	// plans from today forward and regenerates today's plan.
	Save(ctx context.Context, p *domain.StudentProfile, today time.Time) error
	Reset(ctx context.Context) error
}

type EventService interface {
	Add(ctx context.Context, e *domain.EventDate, today time.Time) error
	List(ctx context.Context) ([]domain.EventDate, error)
	Remove(ctx context.Context, id string, today time.Time) error
}

// HistoryService records task completions reported by the timer or the
// done command.
type HistoryService interface {
	// Complete marks the task on date's plan as completed and appends
	// it to the completed-task history feeding future review runs.
	Complete(ctx context.Context, date time.Time, taskID string, actualMin int, completedAt time.Time) error
	List(ctx context.Context) ([]domain.StudyTask, error)
}

type RulesService interface {
	Active(ctx context.Context) (ruleset.Config, error)
	// Save stores a new config version, discards all future-dated
	// cached plans, and eagerly regenerates today's plan.
	Save(ctx context.Context, cfg ruleset.Config, today time.Time) error
}

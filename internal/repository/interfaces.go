package repository

import (
	"context"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/ruleset"
)

// ProfileRepo stores the single student profile and its selected subjects.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.StudentProfile, error)
	Upsert(ctx context.Context, p *domain.StudentProfile) error
	Delete(ctx context.Context) error
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.EventDate) error
	GetByID(ctx context.Context, id string) (*domain.EventDate, error)
	List(ctx context.Context) ([]domain.EventDate, error)
	Delete(ctx context.Context, id string) error
}

// HistoryRepo stores completed StudyTask records. History rows are
// append-only and returned in completion order; the review scheduler
// depends on that order being stable.
type HistoryRepo interface {
	Append(ctx context.Context, t domain.StudyTask) error
	List(ctx context.Context) ([]domain.StudyTask, error)
}

// PlanRepo is the plan cache, keyed by ISO date string. Put fully
// replaces any existing entry for the same date.
type PlanRepo interface {
	Put(ctx context.Context, p domain.DailyPlan) error
	Get(ctx context.Context, date time.Time) (*domain.DailyPlan, error)
	DeleteFrom(ctx context.Context, date time.Time) error
}

// RuleRepo stores versioned rule-configuration snapshots, one active.
type RuleRepo interface {
	Active(ctx context.Context) (ruleset.Config, error)
	Save(ctx context.Context, cfg ruleset.Config) error
}

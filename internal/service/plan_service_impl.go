package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/planner"
	"github.com/hsato/studyplan/internal/repository"
)

type planService struct {
	profiles repository.ProfileRepo
	events   repository.EventRepo
	history  repository.HistoryRepo
	plans    repository.PlanRepo
	rules    repository.RuleRepo
}

func NewPlanService(
	profiles repository.ProfileRepo,
	events repository.EventRepo,
	history repository.HistoryRepo,
	plans repository.PlanRepo,
	rules repository.RuleRepo,
) PlanService {
	return &planService{
		profiles: profiles,
		events:   events,
		history:  history,
		plans:    plans,
		rules:    rules,
	}
}

func (s *planService) Plan(ctx context.Context, date time.Time) (*domain.DailyPlan, error) {
	cached, err := s.plans.Get(ctx, date)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.Regenerate(ctx, date)
}

func (s *planService) Regenerate(ctx context.Context, date time.Time) (*domain.DailyPlan, error) {
	in, err := s.loadSnapshot(ctx, date)
	if err != nil {
		return nil, err
	}

	plan := planner.AssemblePlan(in)
	if err := s.plans.Put(ctx, plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// loadSnapshot materializes a consistent input snapshot for the engine.
// A missing profile is not an error: the engine degrades to an empty plan.
func (s *planService) loadSnapshot(ctx context.Context, date time.Time) (planner.Input, error) {
	in := planner.Input{TargetDate: date}

	profile, err := s.profiles.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return in, fmt.Errorf("loading profile: %w", err)
	}
	in.Profile = profile

	if in.Events, err = s.events.List(ctx); err != nil {
		return in, fmt.Errorf("loading events: %w", err)
	}
	if in.History, err = s.history.List(ctx); err != nil {
		return in, fmt.Errorf("loading task history: %w", err)
	}
	if in.Rules, err = s.rules.Active(ctx); err != nil {
		return in, fmt.Errorf("loading rule config: %w", err)
	}
	return in, nil
}

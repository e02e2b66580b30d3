package service

import (
	"context"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/repository"
	"github.com/hsato/studyplan/internal/ruleset"
)

type rulesService struct {
	rules   repository.RuleRepo
	plans   repository.PlanRepo
	planner PlanService
}

func NewRulesService(rules repository.RuleRepo, plans repository.PlanRepo, planSvc PlanService) RulesService {
	return &rulesService{rules: rules, plans: plans, planner: planSvc}
}

func (s *rulesService) Active(ctx context.Context) (ruleset.Config, error) {
	return s.rules.Active(ctx)
}

// Save persists a new config version, then discards all future-dated
// cached plans and eagerly regenerates today's. Past plans are kept as
// historical record.
func (s *rulesService) Save(ctx context.Context, cfg ruleset.Config, today time.Time) error {
	if err := s.rules.Save(ctx, ruleset.Sanitize(cfg)); err != nil {
		return err
	}
	if err := s.plans.DeleteFrom(ctx, domain.DateOnly(today)); err != nil {
		return err
	}
	_, err := s.planner.Regenerate(ctx, today)
	return err
}

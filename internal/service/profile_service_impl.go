package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	plans    repository.PlanRepo
	planner  PlanService
}

func NewProfileService(profiles repository.ProfileRepo, plans repository.PlanRepo, planSvc PlanService) ProfileService {
	return &profileService{profiles: profiles, plans: plans, planner: planSvc}
}

func (s *profileService) Get(ctx context.Context) (*domain.StudentProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Save(ctx context.Context, p *domain.StudentProfile, today time.Time) error {
	if err := validateProfile(p); err != nil {
		return err
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return err
	}

	// Any profile edit changes what future plans would contain.
	if err := s.plans.DeleteFrom(ctx, today); err != nil {
		return err
	}
	_, err := s.planner.Regenerate(ctx, today)
	return err
}

func (s *profileService) Reset(ctx context.Context) error {
	return s.profiles.Delete(ctx)
}

func validateProfile(p *domain.StudentProfile) error {
	if p == nil {
		return fmt.Errorf("profile is required")
	}
	if p.ExamDate.IsZero() {
		return fmt.Errorf("exam date is required")
	}
	seen := make(map[string]bool, len(p.Subjects))
	for _, sub := range p.Subjects {
		info := domain.LookupSubject(sub.SubjectID)
		if seen[sub.SubjectID] {
			return fmt.Errorf("subject %s selected twice", sub.SubjectID)
		}
		seen[sub.SubjectID] = true
		if sub.CurrentScore < 0 || sub.CurrentScore > info.MaxScore {
			return fmt.Errorf("subject %s: current score %d out of range 0-%d", sub.SubjectID, sub.CurrentScore, info.MaxScore)
		}
		if sub.TargetScore < 0 || sub.TargetScore > info.MaxScore {
			return fmt.Errorf("subject %s: target score %d out of range 0-%d", sub.SubjectID, sub.TargetScore, info.MaxScore)
		}
		if sub.Difficulty < 1 || sub.Difficulty > 5 {
			return fmt.Errorf("subject %s: difficulty %d out of range 1-5", sub.SubjectID, sub.Difficulty)
		}
	}
	return nil
}

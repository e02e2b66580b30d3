package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/repository"
)

type eventService struct {
	events repository.EventRepo
	plans  repository.PlanRepo
}

func NewEventService(events repository.EventRepo, plans repository.PlanRepo) EventService {
	return &eventService{events: events, plans: plans}
}

func (s *eventService) Add(ctx context.Context, e *domain.EventDate, today time.Time) error {
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if !domain.ValidEventTypes[string(e.Type)] {
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.DurationDays < 1 {
		e.DurationDays = 1
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if err := s.events.Create(ctx, e); err != nil {
		return err
	}
	return s.invalidateFrom(ctx, e.StartDate, today)
}

func (s *eventService) List(ctx context.Context) ([]domain.EventDate, error) {
	return s.events.List(ctx)
}

func (s *eventService) Remove(ctx context.Context, id string, today time.Time) error {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	return s.invalidateFrom(ctx, e.StartDate, today)
}

// invalidateFrom drops cached plans from the event's start date, but
// never before today: past plans stay as historical record.
func (s *eventService) invalidateFrom(ctx context.Context, eventStart, today time.Time) error {
	from := domain.DateOnly(eventStart)
	if t := domain.DateOnly(today); from.Before(t) {
		from = t
	}
	return s.plans.DeleteFrom(ctx, from)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/db"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/hsato/studyplan/internal/repository"
)

type historyService struct {
	history repository.HistoryRepo
	uow     db.UnitOfWork
}

func NewHistoryService(history repository.HistoryRepo, uow db.UnitOfWork) HistoryService {
	return &historyService{history: history, uow: uow}
}

// Complete marks a task on the stored plan as done and appends it to
// history. Plan update and history append happen in one transaction so a
// crash can never record a completion the plan does not show.
func (s *historyService) Complete(ctx context.Context, date time.Time, taskID string, actualMin int, completedAt time.Time) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txHistory := repository.NewSQLiteHistoryRepo(tx)

		plan, err := txPlans.Get(ctx, date)
		if err != nil {
			return err
		}

		idx := -1
		for i := range plan.Tasks {
			if plan.Tasks[i].ID == taskID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("task %s not in plan %s: %w", taskID, plan.DateKey(), repository.ErrNotFound)
		}
		if plan.Tasks[idx].Completed {
			return fmt.Errorf("task %s already completed", taskID)
		}

		done := completedAt.UTC()
		plan.Tasks[idx].Completed = true
		plan.Tasks[idx].ActualMin = &actualMin
		plan.Tasks[idx].CompletedAt = &done
		plan.RecomputeCompletion()

		if err := txPlans.Put(ctx, *plan); err != nil {
			return err
		}
		return txHistory.Append(ctx, plan.Tasks[idx])
	})
}

func (s *historyService) List(ctx context.Context) ([]domain.StudyTask, error) {
	return s.history.List(ctx)
}

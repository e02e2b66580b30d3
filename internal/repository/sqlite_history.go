package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/db"
	"github.com/hsato/studyplan/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
// Rows carry a monotonically assigned seq so List returns completions in
// a stable order even when several complete at the same second.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, t domain.StudyTask) error {
	if !t.Completed || t.CompletedAt == nil {
		return fmt.Errorf("history accepts completed tasks only")
	}

	var seq int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM task_history`).Scan(&seq); err != nil {
		return fmt.Errorf("allocating history seq: %w", err)
	}

	var origDate interface{}
	var reviewNum interface{}
	if t.ReviewSource != nil {
		origDate = t.ReviewSource.OriginalDate.Format(domain.DateLayout)
		reviewNum = t.ReviewSource.ReviewNumber
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_history (id, subject_id, type, content, pomodoro_type, pomodoro_count,
			estimated_min, review_original_date, review_number, actual_min, completed_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.SubjectID, string(t.Type), t.Content, string(t.PomodoroType), t.PomodoroCount,
		t.EstimatedMin, origDate, reviewNum, nullableIntToValue(t.ActualMin),
		t.CompletedAt.UTC().Format(time.RFC3339), seq,
	)
	if err != nil {
		return fmt.Errorf("appending task history: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) List(ctx context.Context) ([]domain.StudyTask, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subject_id, type, content, pomodoro_type, pomodoro_count,
			estimated_min, review_original_date, review_number, actual_min, completed_at
		FROM task_history ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing task history: %w", err)
	}
	defer rows.Close()

	var out []domain.StudyTask
	for rows.Next() {
		var t domain.StudyTask
		var taskType, pomodoroType, completedAt string
		var origDate sql.NullString
		var reviewNum, actualMin sql.NullInt64
		err := rows.Scan(&t.ID, &t.SubjectID, &taskType, &t.Content, &pomodoroType,
			&t.PomodoroCount, &t.EstimatedMin, &origDate, &reviewNum, &actualMin, &completedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning task history: %w", err)
		}

		t.Type = domain.TaskType(taskType)
		t.PomodoroType = domain.PomodoroType(pomodoroType)
		t.Completed = true
		if ts, err := time.Parse(time.RFC3339, completedAt); err == nil {
			t.CompletedAt = &ts
		}
		if actualMin.Valid {
			v := int(actualMin.Int64)
			t.ActualMin = &v
		}
		if origDate.Valid && reviewNum.Valid {
			if d, err := time.Parse(domain.DateLayout, origDate.String); err == nil {
				t.ReviewSource = &domain.ReviewSource{
					OriginalDate: d,
					ReviewNumber: int(reviewNum.Int64),
				}
			}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/db"
	"github.com/hsato/studyplan/internal/domain"
)

// SQLitePlanRepo implements the plan cache. Task lists are stored as a
// JSON payload per date row; Put fully replaces the entry for its date.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

// planTask is the JSON shape of one stored task.
type planTask struct {
	ID            string     `json:"id"`
	SubjectID     string     `json:"subjectId"`
	Type          string     `json:"type"`
	Content       string     `json:"content"`
	PomodoroType  string     `json:"pomodoroType"`
	PomodoroCount int        `json:"pomodoroCount"`
	EstimatedMin  int        `json:"estimatedMin"`
	ReviewOrigin  string     `json:"reviewOrigin,omitempty"`
	ReviewNumber  int        `json:"reviewNumber,omitempty"`
	Completed     bool       `json:"completed"`
	ActualMin     *int       `json:"actualMin,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

func (r *SQLitePlanRepo) Put(ctx context.Context, p domain.DailyPlan) error {
	payload, err := json.Marshal(encodeTasks(p.Tasks))
	if err != nil {
		return fmt.Errorf("encoding plan tasks: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO daily_plans (date, phase, days_left, day_type,
			club_day, match_day, event_day, available_min, completion_rate, tasks_json, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.DateKey(), string(p.Phase), p.DaysLeft, string(p.DayType),
		boolToInt(p.ClubDay), boolToInt(p.MatchDay), boolToInt(p.EventDay),
		p.AvailableMin, p.CompletionRate, string(payload), nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("storing plan for %s: %w", p.DateKey(), err)
	}
	return nil
}

func (r *SQLitePlanRepo) Get(ctx context.Context, date time.Time) (*domain.DailyPlan, error) {
	key := domain.FormatDate(date)
	row := r.db.QueryRowContext(ctx,
		`SELECT date, phase, days_left, day_type, club_day, match_day, event_day,
			available_min, completion_rate, tasks_json
		FROM daily_plans WHERE date = ?`, key)

	var p domain.DailyPlan
	var dateStr, phase, dayType, tasksJSON string
	var clubDay, matchDay, eventDay int
	err := row.Scan(&dateStr, &phase, &p.DaysLeft, &dayType,
		&clubDay, &matchDay, &eventDay, &p.AvailableMin, &p.CompletionRate, &tasksJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan %s: %w", key, err)
	}

	if p.Date, err = time.Parse(domain.DateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing plan date: %w", err)
	}
	p.Phase = domain.PhaseName(phase)
	p.DayType = domain.DayType(dayType)
	p.ClubDay = intToBool(clubDay)
	p.MatchDay = intToBool(matchDay)
	p.EventDay = intToBool(eventDay)

	var stored []planTask
	if err := json.Unmarshal([]byte(tasksJSON), &stored); err != nil {
		return nil, fmt.Errorf("decoding plan tasks for %s: %w", key, err)
	}
	p.Tasks = decodeTasks(stored)
	return &p, nil
}

// DeleteFrom drops every cached plan dated on or after the given date.
// Past plans stay untouched as historical record.
func (r *SQLitePlanRepo) DeleteFrom(ctx context.Context, date time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM daily_plans WHERE date >= ?`, domain.FormatDate(date))
	if err != nil {
		return fmt.Errorf("invalidating plans from %s: %w", domain.FormatDate(date), err)
	}
	return nil
}

func encodeTasks(tasks []domain.StudyTask) []planTask {
	out := make([]planTask, 0, len(tasks))
	for _, t := range tasks {
		pt := planTask{
			ID:            t.ID,
			SubjectID:     t.SubjectID,
			Type:          string(t.Type),
			Content:       t.Content,
			PomodoroType:  string(t.PomodoroType),
			PomodoroCount: t.PomodoroCount,
			EstimatedMin:  t.EstimatedMin,
			Completed:     t.Completed,
			ActualMin:     t.ActualMin,
			CompletedAt:   t.CompletedAt,
		}
		if t.ReviewSource != nil {
			pt.ReviewOrigin = domain.FormatDate(t.ReviewSource.OriginalDate)
			pt.ReviewNumber = t.ReviewSource.ReviewNumber
		}
		out = append(out, pt)
	}
	return out
}

func decodeTasks(stored []planTask) []domain.StudyTask {
	out := make([]domain.StudyTask, 0, len(stored))
	for _, pt := range stored {
		t := domain.StudyTask{
			ID:            pt.ID,
			SubjectID:     pt.SubjectID,
			Type:          domain.TaskType(pt.Type),
			Content:       pt.Content,
			PomodoroType:  domain.PomodoroType(pt.PomodoroType),
			PomodoroCount: pt.PomodoroCount,
			EstimatedMin:  pt.EstimatedMin,
			Completed:     pt.Completed,
			ActualMin:     pt.ActualMin,
			CompletedAt:   pt.CompletedAt,
		}
		if pt.ReviewOrigin != "" {
			if d, err := time.Parse(domain.DateLayout, pt.ReviewOrigin); err == nil {
				t.ReviewSource = &domain.ReviewSource{
					OriginalDate: d,
					ReviewNumber: pt.ReviewNumber,
				}
			}
		}
		out = append(out, t)
	}
	return out
}

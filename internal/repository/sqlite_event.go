package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/db"
	"github.com/hsato/studyplan/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db db.DBTX
}

func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.EventDate) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (id, title, start_date, type, duration_days, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.StartDate.Format(domain.DateLayout), string(e.Type),
		e.DurationDays, e.Note, e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.EventDate, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, start_date, type, duration_days, note, created_at
		FROM events WHERE id = ?`, id)
	e, err := scanEvent(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEventRepo) List(ctx context.Context) ([]domain.EventDate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, start_date, type, duration_days, note, created_at
		FROM events ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var out []domain.EventDate
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanEvent(scan func(...any) error) (*domain.EventDate, error) {
	var e domain.EventDate
	var eventType, startDate, createdAt string
	if err := scan(&e.ID, &e.Title, &startDate, &eventType, &e.DurationDays, &e.Note, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if e.StartDate, err = time.Parse(domain.DateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing event start date: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing event created_at: %w", err)
	}
	e.Type = domain.EventType(eventType)
	return &e, nil
}

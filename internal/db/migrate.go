package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS student_profile (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL DEFAULT '',
		exam_template_id   TEXT NOT NULL DEFAULT '',
		exam_date          TEXT NOT NULL,
		study_start_date   TEXT,
		wake_time          TEXT NOT NULL DEFAULT '',
		bed_time           TEXT NOT NULL DEFAULT '',
		school_start       TEXT NOT NULL DEFAULT '',
		school_end         TEXT NOT NULL DEFAULT '',
		commute_min        INTEGER NOT NULL DEFAULT 0,
		meal_bath_min      INTEGER NOT NULL DEFAULT 0,
		buffer_min         INTEGER NOT NULL DEFAULT 0,
		club_weekdays      TEXT NOT NULL DEFAULT '',
		club_start         TEXT NOT NULL DEFAULT '',
		club_end           TEXT NOT NULL DEFAULT '',
		club_weekend_start TEXT NOT NULL DEFAULT '',
		club_weekend_end   TEXT NOT NULL DEFAULT '',
		summer_start       TEXT,
		summer_end         TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS selected_subjects (
		profile_id    TEXT NOT NULL REFERENCES student_profile(id) ON DELETE CASCADE,
		subject_id    TEXT NOT NULL,
		current_score INTEGER NOT NULL DEFAULT 0,
		target_score  INTEGER NOT NULL DEFAULT 0,
		difficulty    INTEGER NOT NULL DEFAULT 3
		              CHECK(difficulty BETWEEN 1 AND 5),
		textbooks     TEXT NOT NULL DEFAULT '',
		order_index   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (profile_id, subject_id)
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		start_date    TEXT NOT NULL,
		type          TEXT NOT NULL
		              CHECK(type IN ('match','school_event','regular_test','mock_exam','other')),
		duration_days INTEGER NOT NULL DEFAULT 1,
		note          TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_date)`,

	`CREATE TABLE IF NOT EXISTS task_history (
		id                   TEXT PRIMARY KEY,
		subject_id           TEXT NOT NULL,
		type                 TEXT NOT NULL,
		content              TEXT NOT NULL DEFAULT '',
		pomodoro_type        TEXT NOT NULL,
		pomodoro_count       INTEGER NOT NULL DEFAULT 1,
		estimated_min        INTEGER NOT NULL DEFAULT 0,
		review_original_date TEXT,
		review_number        INTEGER,
		actual_min           INTEGER,
		completed_at         TEXT NOT NULL,
		seq                  INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_history_completed ON task_history(completed_at)`,

	`CREATE TABLE IF NOT EXISTS daily_plans (
		date            TEXT PRIMARY KEY,
		phase           TEXT NOT NULL DEFAULT '',
		days_left       INTEGER NOT NULL DEFAULT 0,
		day_type        TEXT NOT NULL DEFAULT '',
		club_day        INTEGER NOT NULL DEFAULT 0,
		match_day       INTEGER NOT NULL DEFAULT 0,
		event_day       INTEGER NOT NULL DEFAULT 0,
		available_min   INTEGER NOT NULL DEFAULT 0,
		completion_rate REAL NOT NULL DEFAULT 0,
		tasks_json      TEXT NOT NULL DEFAULT '[]',
		generated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS rule_configs (
		version     INTEGER PRIMARY KEY,
		saved_at    TEXT NOT NULL,
		active      INTEGER NOT NULL DEFAULT 0,
		config_json TEXT NOT NULL
	)`,
}

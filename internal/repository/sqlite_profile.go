package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hsato/studyplan/internal/db"
	"github.com/hsato/studyplan/internal/domain"
)

// profileID is the fixed key of the singleton profile row.
const profileID = "default"

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.StudentProfile, error) {
	query := `SELECT id, name, exam_template_id, exam_date, study_start_date,
		wake_time, bed_time, school_start, school_end,
		commute_min, meal_bath_min, buffer_min,
		club_weekdays, club_start, club_end, club_weekend_start, club_weekend_end,
		summer_start, summer_end, created_at, updated_at
		FROM student_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, profileID)

	var p domain.StudentProfile
	var examDate, createdAt, updatedAt string
	var studyStart, summerStart, summerEnd sql.NullString
	var clubWeekdays string
	err := row.Scan(
		&p.ID, &p.Name, &p.ExamTemplateID, &examDate, &studyStart,
		&p.Schedule.WakeTime, &p.Schedule.BedTime,
		&p.Schedule.SchoolStart, &p.Schedule.SchoolEnd,
		&p.Schedule.CommuteMin, &p.Schedule.MealBathMin, &p.Schedule.BufferMin,
		&clubWeekdays, &p.Schedule.ClubStart, &p.Schedule.ClubEnd,
		&p.Schedule.ClubWeekendStart, &p.Schedule.ClubWeekendEnd,
		&summerStart, &summerEnd, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student profile: %w", err)
	}

	if p.ExamDate, err = time.Parse(domain.DateLayout, examDate); err != nil {
		return nil, fmt.Errorf("parsing exam date: %w", err)
	}
	p.StudyStartDate = parseNullableTime(studyStart, domain.DateLayout)
	p.Schedule.SummerStart = parseNullableTime(summerStart, domain.DateLayout)
	p.Schedule.SummerEnd = parseNullableTime(summerEnd, domain.DateLayout)
	p.Schedule.ClubWeekdays = decodeWeekdays(clubWeekdays)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	if p.Subjects, err = r.listSubjects(ctx); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.StudentProfile) error {
	if p.ID == "" {
		p.ID = profileID
	}
	now := nowUTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt, _ = time.Parse(time.RFC3339, now)
	}

	query := `INSERT OR REPLACE INTO student_profile (
		id, name, exam_template_id, exam_date, study_start_date,
		wake_time, bed_time, school_start, school_end,
		commute_min, meal_bath_min, buffer_min,
		club_weekdays, club_start, club_end, club_weekend_start, club_weekend_end,
		summer_start, summer_end, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.ExamTemplateID,
		p.ExamDate.Format(domain.DateLayout),
		nullableTimeToString(p.StudyStartDate, domain.DateLayout),
		p.Schedule.WakeTime, p.Schedule.BedTime,
		p.Schedule.SchoolStart, p.Schedule.SchoolEnd,
		p.Schedule.CommuteMin, p.Schedule.MealBathMin, p.Schedule.BufferMin,
		encodeWeekdays(p.Schedule.ClubWeekdays),
		p.Schedule.ClubStart, p.Schedule.ClubEnd,
		p.Schedule.ClubWeekendStart, p.Schedule.ClubWeekendEnd,
		nullableTimeToString(p.Schedule.SummerStart, domain.DateLayout),
		nullableTimeToString(p.Schedule.SummerEnd, domain.DateLayout),
		p.CreatedAt.Format(time.RFC3339), now,
	)
	if err != nil {
		return fmt.Errorf("upserting student profile: %w", err)
	}

	// Subjects are replaced wholesale; order_index preserves profile
	// insertion order, which the allocator's tie-breaks rely on.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM selected_subjects WHERE profile_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing selected subjects: %w", err)
	}
	for i, s := range p.Subjects {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO selected_subjects (profile_id, subject_id, current_score, target_score, difficulty, textbooks, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, s.SubjectID, s.CurrentScore, s.TargetScore, s.Difficulty, s.Textbooks, i,
		)
		if err != nil {
			return fmt.Errorf("inserting subject %s: %w", s.SubjectID, err)
		}
	}
	return nil
}

func (r *SQLiteProfileRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM student_profile WHERE id = ?`, profileID); err != nil {
		return fmt.Errorf("deleting student profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) listSubjects(ctx context.Context) ([]domain.SelectedSubject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT subject_id, current_score, target_score, difficulty, textbooks
		FROM selected_subjects WHERE profile_id = ? ORDER BY order_index`, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing selected subjects: %w", err)
	}
	defer rows.Close()

	var out []domain.SelectedSubject
	for rows.Next() {
		var s domain.SelectedSubject
		if err := rows.Scan(&s.SubjectID, &s.CurrentScore, &s.TargetScore, &s.Difficulty, &s.Textbooks); err != nil {
			return nil, fmt.Errorf("scanning selected subject: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func encodeWeekdays(days []time.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(s string) []time.Weekday {
	if s == "" {
		return nil
	}
	var out []time.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			continue
		}
		out = append(out, time.Weekday(n))
	}
	return out
}

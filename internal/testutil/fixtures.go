package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/hsato/studyplan/internal/domain"
)

// ProfileOption mutates a test profile during construction.
type ProfileOption func(*domain.StudentProfile)

func WithExamDate(d time.Time) ProfileOption {
	return func(p *domain.StudentProfile) {
		p.ExamDate = d
	}
}

func WithStudyStart(d time.Time) ProfileOption {
	return func(p *domain.StudentProfile) {
		p.StudyStartDate = &d
	}
}

func WithSubjects(subjects ...domain.SelectedSubject) ProfileOption {
	return func(p *domain.StudentProfile) {
		p.Subjects = subjects
	}
}

func WithClubDays(days ...time.Weekday) ProfileOption {
	return func(p *domain.StudentProfile) {
		p.Schedule.ClubWeekdays = days
		p.Schedule.ClubStart = "16:00"
		p.Schedule.ClubEnd = "18:30"
	}
}

// NewTestProfile builds a profile with a realistic weekday schedule:
// 06:30 wake, 23:30 bed, school 08:30-15:30, 30 minute commute.
func NewTestProfile(opts ...ProfileOption) *domain.StudentProfile {
	p := &domain.StudentProfile{
		ID:       "default",
		Name:     "Test Student",
		ExamDate: time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		Schedule: domain.DailySchedule{
			WakeTime:    "06:30",
			BedTime:     "23:30",
			SchoolStart: "08:30",
			SchoolEnd:   "15:30",
			CommuteMin:  30,
			MealBathMin: 90,
			BufferMin:   30,
		},
		Subjects: []domain.SelectedSubject{
			{SubjectID: "eng_r", CurrentScore: 40, TargetScore: 85, Difficulty: 4},
			{SubjectID: "math_1a", CurrentScore: 55, TargetScore: 80, Difficulty: 5},
			{SubjectID: "chemistry", CurrentScore: 30, TargetScore: 70, Difficulty: 3},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestEvent builds a one-day calendar event starting on start.
func NewTestEvent(title string, eventType domain.EventType, start time.Time) *domain.EventDate {
	return &domain.EventDate{
		ID:           uuid.New().String(),
		Title:        title,
		Type:         eventType,
		StartDate:    start,
		DurationDays: 1,
	}
}

// NewCompletedTask builds a completed original-learning history record.
func NewCompletedTask(subjectID string, completedAt time.Time, pt domain.PomodoroType) domain.StudyTask {
	actual := 30
	return domain.StudyTask{
		ID:            uuid.New().String(),
		SubjectID:     subjectID,
		Type:          domain.TaskNew,
		Content:       "Chapter work",
		PomodoroType:  pt,
		PomodoroCount: 1,
		EstimatedMin:  30,
		Completed:     true,
		ActualMin:     &actual,
		CompletedAt:   &completedAt,
	}
}

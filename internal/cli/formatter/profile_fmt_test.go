package formatter

import (
	"testing"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatProfile_SubjectsAndSchedule(t *testing.T) {
	p := &domain.StudentProfile{
		Name:     "Yuki",
		ExamDate: time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		Schedule: domain.DailySchedule{
			WakeTime: "06:30", BedTime: "23:30",
			SchoolStart: "08:30", SchoolEnd: "15:30",
			CommuteMin: 30, MealBathMin: 90, BufferMin: 30,
			ClubWeekdays: []time.Weekday{time.Tuesday, time.Thursday},
			ClubStart:    "16:00", ClubEnd: "18:30",
		},
		Subjects: []domain.SelectedSubject{
			{SubjectID: "eng_r", CurrentScore: 40, TargetScore: 85, Difficulty: 4},
			{SubjectID: "chemistry", CurrentScore: 30, TargetScore: 70, Difficulty: 3},
		},
	}

	out := FormatProfile(p)

	assert.Contains(t, out, "Yuki")
	assert.Contains(t, out, "2026-01-17")
	assert.Contains(t, out, "Tue Thu")
	assert.Contains(t, out, "English Reading")
	assert.Contains(t, out, "critical")
	assert.Contains(t, out, "Chemistry")
	assert.Contains(t, out, "difficulty 4")
}

func TestFormatProfile_NoSubjects(t *testing.T) {
	p := &domain.StudentProfile{
		ExamDate: time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		Schedule: domain.DailySchedule{WakeTime: "06:30", BedTime: "23:30"},
	}

	out := FormatProfile(p)

	assert.Contains(t, out, "No subjects selected.")
}

func TestFormatSubjectCatalog_MarksSelected(t *testing.T) {
	out := FormatSubjectCatalog(map[string]bool{"math_1a": true})

	assert.Contains(t, out, "math_1a")
	assert.Contains(t, out, "Math I/A")
	assert.Contains(t, out, "World History")
}

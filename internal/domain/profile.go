package domain

import "time"

// StudentProfile is the root aggregate: one per installation.
type StudentProfile struct {
	ID             string
	Name           string
	ExamTemplateID string
	ExamDate       time.Time
	StudyStartDate *time.Time
	Schedule       DailySchedule
	// Subjects keeps insertion order; the allocator's reconciliation
	// tie-breaks depend on this order being stable.
	Subjects []SelectedSubject

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SelectedSubject is one subject the student is preparing for.
type SelectedSubject struct {
	SubjectID    string
	CurrentScore int
	TargetScore  int
	// Difficulty is the student's own rating, 1-5 with 5 hardest.
	Difficulty int
	// Textbooks is a legacy free-text list kept for display only.
	Textbooks string
}

// DailySchedule describes the student's recurring weekly time structure.
// All clock fields are "HH:MM"; a span whose end is numerically before its
// start wraps past midnight.
type DailySchedule struct {
	WakeTime    string
	BedTime     string
	SchoolStart string
	SchoolEnd   string
	// CommuteMin is one-way; weekdays cost twice this.
	CommuteMin  int
	MealBathMin int
	BufferMin   int

	// ClubWeekdays holds time.Weekday values with club practice.
	ClubWeekdays     []time.Weekday
	ClubStart        string
	ClubEnd          string
	ClubWeekendStart string
	ClubWeekendEnd   string

	SummerStart *time.Time
	SummerEnd   *time.Time
}

// HasClubOn reports whether wd is a club-practice weekday.
func (s DailySchedule) HasClubOn(wd time.Weekday) bool {
	for _, d := range s.ClubWeekdays {
		if d == wd {
			return true
		}
	}
	return false
}

// InSummer reports whether date falls inside the summer-vacation range.
func (s DailySchedule) InSummer(date time.Time) bool {
	if s.SummerStart == nil || s.SummerEnd == nil {
		return false
	}
	d := DateOnly(date)
	return !d.Before(DateOnly(*s.SummerStart)) && !d.After(DateOnly(*s.SummerEnd))
}

// SubjectByID returns the selected subject with the given id, or nil.
func (p *StudentProfile) SubjectByID(subjectID string) *SelectedSubject {
	for i := range p.Subjects {
		if p.Subjects[i].SubjectID == subjectID {
			return &p.Subjects[i]
		}
	}
	return nil
}

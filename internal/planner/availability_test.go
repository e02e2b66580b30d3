package planner

import (
	"testing"
	"time"

	"github.com/hsato/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func baseSchedule() domain.DailySchedule {
	return domain.DailySchedule{
		WakeTime:    "06:30",
		BedTime:     "23:30",
		SchoolStart: "08:30",
		SchoolEnd:   "15:30",
		CommuteMin:  30,
		MealBathMin: 90,
		BufferMin:   30,
	}
}

func TestAvailableMinutes_PlainWeekday(t *testing.T) {
	// 17h day = 1020; minus commute 60, school 420, meals 90, buffer 30.
	monday := date(2025, 9, 1)
	day := AvailableMinutes(baseSchedule(), nil, monday, nil)

	assert.Equal(t, 420, day.AvailableMin)
	assert.Equal(t, domain.DayWeekdayNoClub, day.DayType)
	assert.False(t, day.ClubDay)
}

func TestAvailableMinutes_ClubWeekday(t *testing.T) {
	s := baseSchedule()
	s.ClubWeekdays = []time.Weekday{time.Monday, time.Wednesday}
	s.ClubStart = "16:00"
	s.ClubEnd = "18:30"

	day := AvailableMinutes(s, nil, date(2025, 9, 1), nil)

	assert.Equal(t, 420-150, day.AvailableMin)
	assert.Equal(t, domain.DayWeekdayClub, day.DayType)
	assert.True(t, day.ClubDay)
}

func TestAvailableMinutes_WeekendSkipsSchoolAndCommute(t *testing.T) {
	saturday := date(2025, 9, 6)
	day := AvailableMinutes(baseSchedule(), nil, saturday, nil)

	// 1020 minus meals 90 and buffer 30 only.
	assert.Equal(t, 900, day.AvailableMin)
	assert.Equal(t, domain.DayWeekend, day.DayType)
}

func TestAvailableMinutes_WeekendClubWindow(t *testing.T) {
	s := baseSchedule()
	s.ClubWeekdays = []time.Weekday{time.Saturday}
	s.ClubStart = "16:00"
	s.ClubEnd = "18:30"
	s.ClubWeekendStart = "09:00"
	s.ClubWeekendEnd = "13:00"

	day := AvailableMinutes(s, nil, date(2025, 9, 6), nil)

	assert.Equal(t, 900-240, day.AvailableMin)
}

func TestAvailableMinutes_MatchDayOverride(t *testing.T) {
	events := []domain.EventDate{{
		Title: "Prefectural qualifier", Type: domain.EventMatch,
		StartDate: date(2025, 9, 6), DurationDays: 1,
	}}

	day := AvailableMinutes(baseSchedule(), events, date(2025, 9, 6), nil)

	// Base 900; min(60, floor(0.25*900)) = 60.
	assert.Equal(t, 60, day.AvailableMin)
	assert.True(t, day.MatchDay)
	assert.Equal(t, domain.DayMatch, day.DayType)
}

func TestAvailableMinutes_MatchBeatsGenericEvent(t *testing.T) {
	events := []domain.EventDate{
		{Title: "Culture festival", Type: domain.EventSchool, StartDate: date(2025, 9, 6), DurationDays: 2},
		{Title: "Match", Type: domain.EventMatch, StartDate: date(2025, 9, 6), DurationDays: 1},
	}

	day := AvailableMinutes(baseSchedule(), events, date(2025, 9, 6), nil)

	assert.True(t, day.MatchDay)
	assert.True(t, day.EventDay)
	assert.Equal(t, domain.DayMatch, day.DayType)
	assert.Equal(t, 60, day.AvailableMin)
}

func TestAvailableMinutes_EventDayOverride(t *testing.T) {
	events := []domain.EventDate{{
		Title: "Mock exam", Type: domain.EventMockExam,
		StartDate: date(2025, 9, 6), DurationDays: 1,
	}}

	day := AvailableMinutes(baseSchedule(), events, date(2025, 9, 6), nil)

	// min(30, floor(0.15*900)) = 30.
	assert.Equal(t, 30, day.AvailableMin)
	assert.Equal(t, domain.DayEvent, day.DayType)
}

func TestAvailableMinutes_BeforeStudyStart(t *testing.T) {
	start := date(2025, 9, 10)
	day := AvailableMinutes(baseSchedule(), nil, date(2025, 9, 1), &start)
	assert.Equal(t, 0, day.AvailableMin)
}

func TestAvailableMinutes_SummerTreatedAsHoliday(t *testing.T) {
	s := baseSchedule()
	ss, se := date(2025, 7, 20), date(2025, 8, 31)
	s.SummerStart, s.SummerEnd = &ss, &se

	// A Monday inside summer vacation: no school, no commute.
	day := AvailableMinutes(s, nil, date(2025, 8, 4), nil)

	assert.Equal(t, 900, day.AvailableMin)
	assert.Equal(t, domain.DaySummerNoClub, day.DayType)
}

func TestAvailableMinutes_NeverNegative(t *testing.T) {
	s := domain.DailySchedule{
		WakeTime: "23:00", BedTime: "01:00", // wraps midnight: 2h day
		SchoolStart: "08:30", SchoolEnd: "15:30",
		CommuteMin: 90, MealBathMin: 240, BufferMin: 120,
	}
	day := AvailableMinutes(s, nil, date(2025, 9, 1), nil)
	assert.GreaterOrEqual(t, day.AvailableMin, 0)
	assert.Equal(t, 0, day.AvailableMin)
}

func TestAvailableMinutes_EmptyScheduleDegradesToZero(t *testing.T) {
	day := AvailableMinutes(domain.DailySchedule{}, nil, date(2025, 9, 1), nil)
	assert.Equal(t, 0, day.AvailableMin)
}

package planner

import (
	"time"

	"github.com/hsato/studyplan/internal/domain"
)

// Caps applied when a calendar event consumes most of the day. Match days
// take priority over generic event days.
const (
	matchDayCapMin = 60
	matchDayRatio  = 0.25
	eventDayCapMin = 30
	eventDayRatio  = 0.15
)

// DayContext is the availability calculator's result: the study budget for
// one date plus the classification the assembler and templates key on.
type DayContext struct {
	AvailableMin int
	DayType      domain.DayType
	ClubDay      bool
	MatchDay     bool
	EventDay     bool
}

// AvailableMinutes computes how many minutes the student can study on
// date. Pure function of its inputs; the result is never negative.
func AvailableMinutes(schedule domain.DailySchedule, events []domain.EventDate, date time.Time, studyStart *time.Time) DayContext {
	ctx := classifyDay(schedule, events, date)

	if studyStart != nil && domain.DateOnly(date).Before(domain.DateOnly(*studyStart)) {
		ctx.AvailableMin = 0
		return ctx
	}

	wd := date.Weekday()
	weekend := wd == time.Saturday || wd == time.Sunday
	summer := schedule.InSummer(date)
	base := baseMinutes(schedule, weekend || summer, ctx.ClubDay)

	switch {
	case ctx.MatchDay:
		ctx.AvailableMin = capOverride(base, matchDayRatio, matchDayCapMin)
	case ctx.EventDay:
		ctx.AvailableMin = capOverride(base, eventDayRatio, eventDayCapMin)
	default:
		ctx.AvailableMin = base
	}
	return ctx
}

// classifyDay determines the day type for date. Match days take priority
// over generic event days when both cover the same date.
func classifyDay(schedule domain.DailySchedule, events []domain.EventDate, date time.Time) DayContext {
	var ctx DayContext

	for _, e := range events {
		if !e.Covers(date) {
			continue
		}
		if e.Type == domain.EventMatch {
			ctx.MatchDay = true
		} else {
			ctx.EventDay = true
		}
	}

	wd := date.Weekday()
	weekend := wd == time.Saturday || wd == time.Sunday
	summer := schedule.InSummer(date)
	ctx.ClubDay = schedule.HasClubOn(wd)

	switch {
	case ctx.MatchDay:
		ctx.DayType = domain.DayMatch
	case ctx.EventDay:
		ctx.DayType = domain.DayEvent
	case summer && ctx.ClubDay:
		ctx.DayType = domain.DaySummerClub
	case summer:
		ctx.DayType = domain.DaySummerNoClub
	case weekend:
		ctx.DayType = domain.DayWeekend
	case ctx.ClubDay:
		ctx.DayType = domain.DayWeekdayClub
	default:
		ctx.DayType = domain.DayWeekdayNoClub
	}
	return ctx
}

// baseMinutes computes availability before any event override. Each
// subtraction clamps at zero so a pathological schedule can never go
// negative. Weekends, holidays, and summer vacation skip school and
// commute; only meals, bath, and the free-time buffer come off.
func baseMinutes(schedule domain.DailySchedule, offSchool, clubDay bool) int {
	minutes := domain.SpanMinutes(schedule.WakeTime, schedule.BedTime)

	if !offSchool {
		minutes = subClamp(minutes, 2*schedule.CommuteMin)
		minutes = subClamp(minutes, domain.SpanMinutes(schedule.SchoolStart, schedule.SchoolEnd))
	}
	minutes = subClamp(minutes, schedule.MealBathMin)
	minutes = subClamp(minutes, schedule.BufferMin)

	if clubDay {
		minutes = subClamp(minutes, clubSpan(schedule, offSchool))
	}
	return minutes
}

// clubSpan picks the practice window: weekends and vacation days use the
// weekend window when one is configured.
func clubSpan(schedule domain.DailySchedule, offSchool bool) int {
	if offSchool && schedule.ClubWeekendStart != "" && schedule.ClubWeekendEnd != "" {
		return domain.SpanMinutes(schedule.ClubWeekendStart, schedule.ClubWeekendEnd)
	}
	return domain.SpanMinutes(schedule.ClubStart, schedule.ClubEnd)
}

func subClamp(minutes, sub int) int {
	minutes -= sub
	if minutes < 0 {
		return 0
	}
	return minutes
}

func capOverride(base int, ratio float64, capMin int) int {
	scaled := int(float64(base) * ratio)
	if scaled < capMin {
		return scaled
	}
	return capMin
}

package domain

type TaskType string

const (
	TaskNew           TaskType = "new"
	TaskReview        TaskType = "review"
	TaskExamPractice  TaskType = "exam_practice"
	TaskSpeedTraining TaskType = "speed_training"
)

type PomodoroType string

const (
	PomodoroThinking     PomodoroType = "thinking"
	PomodoroMemorization PomodoroType = "memorization"
	PomodoroProcessing   PomodoroType = "processing"
	PomodoroExamPractice PomodoroType = "exam_practice"
)

type EventType string

const (
	EventMatch       EventType = "match"
	EventSchool      EventType = "school_event"
	EventRegularTest EventType = "regular_test"
	EventMockExam    EventType = "mock_exam"
	EventOther       EventType = "other"
)

// ValidEventTypes is the canonical set of accepted event type strings.
var ValidEventTypes = map[string]bool{
	"match": true, "school_event": true, "regular_test": true,
	"mock_exam": true, "other": true,
}

type PhaseName string

const (
	PhaseFoundation PhaseName = "foundation"
	PhasePractice   PhaseName = "practice"
	PhaseFinal      PhaseName = "final"
)

type DayType string

const (
	DayWeekdayClub   DayType = "weekday_club"
	DayWeekdayNoClub DayType = "weekday_no_club"
	DayWeekend       DayType = "weekend"
	DaySummerClub    DayType = "summer_club"
	DaySummerNoClub  DayType = "summer_no_club"
	DayMatch         DayType = "match_day"
	DayEvent         DayType = "event_day"
)

// SubjectCategory classifies a subject for phase-content lookup.
// Unknown ids map to CategoryUnknown rather than falling through silently.
type SubjectCategory string

const (
	CategoryEnglish  SubjectCategory = "english"
	CategoryMath     SubjectCategory = "math"
	CategoryJapanese SubjectCategory = "japanese"
	CategoryScience  SubjectCategory = "science"
	CategorySocial   SubjectCategory = "social"
	CategoryUnknown  SubjectCategory = "unknown"
)

// PedagogicalType describes how a subject is best studied.
type PedagogicalType string

const (
	PedagogyThinking     PedagogicalType = "thinking"
	PedagogyMemorization PedagogicalType = "memorization"
	PedagogyMixed        PedagogicalType = "mixed"
)

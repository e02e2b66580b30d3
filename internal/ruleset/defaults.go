package ruleset

import "github.com/hsato/studyplan/internal/domain"

// defaultPomodoro is the shipped work/break table per pomodoro type.
var defaultPomodoro = map[domain.PomodoroType]PomodoroLength{
	domain.PomodoroThinking:     {WorkMin: 30, BreakMin: 5},
	domain.PomodoroMemorization: {WorkMin: 20, BreakMin: 5},
	domain.PomodoroProcessing:   {WorkMin: 25, BreakMin: 5},
	domain.PomodoroExamPractice: {WorkMin: 60, BreakMin: 10},
}

// Default returns the shipped rule configuration.
func Default() Config {
	return Config{
		Version: 1,
		PhaseBands: []PhaseBand{
			{
				Name: domain.PhaseFoundation, Min: 120, Max: 100000,
				Weights: map[string]float64{"foundation": 0.60, "practice": 0.25, "review": 0.15},
			},
			{
				Name: domain.PhasePractice, Min: 60, Max: 120,
				Weights: map[string]float64{"foundation": 0.30, "practice": 0.50, "review": 0.20},
			},
			{
				Name: domain.PhaseFinal, Min: 0, Max: 30,
				Weights: map[string]float64{"practice": 0.40, "exam_practice": 0.40, "review": 0.20},
			},
		},
		DayTemplates: defaultDayTemplates(),
		PhaseContent: defaultPhaseContent(),
		Forgetting: ForgettingCurve{
			IntervalsDays:     []int{1, 3, 7, 14, 30},
			MaxDailyReviewMin: 60,
			GraduationCount:   3,
		},
		General: General{
			BufferRatio:    0.1,
			Pomodoro:       clonePomodoro(defaultPomodoro),
			RotateSubjects: true,
		},
	}
}

func clonePomodoro(src map[domain.PomodoroType]PomodoroLength) map[domain.PomodoroType]PomodoroLength {
	out := make(map[domain.PomodoroType]PomodoroLength, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func defaultDayTemplates() []DayTemplate {
	study := func(cat domain.SubjectCategory, dur, work, brk int) BlockConfig {
		return BlockConfig{Category: cat, DurationMin: dur, WorkMin: work, BreakMin: brk, Enabled: true}
	}
	return []DayTemplate{
		{DayType: domain.DayWeekdayClub, Blocks: []BlockConfig{
			study(domain.CategoryEnglish, 30, 30, 5),
			study(domain.CategoryMath, 30, 30, 5),
		}},
		{DayType: domain.DayWeekdayNoClub, Blocks: []BlockConfig{
			study(domain.CategoryEnglish, 60, 30, 5),
			study(domain.CategoryMath, 60, 30, 5),
			study(domain.CategorySocial, 40, 20, 5),
		}},
		{DayType: domain.DayWeekend, Blocks: []BlockConfig{
			study(domain.CategoryMath, 90, 30, 5),
			study(domain.CategoryEnglish, 90, 30, 5),
			study(domain.CategoryScience, 60, 25, 5),
			study(domain.CategorySocial, 60, 20, 5),
		}},
		{DayType: domain.DaySummerClub, Blocks: []BlockConfig{
			study(domain.CategoryEnglish, 60, 30, 5),
			study(domain.CategoryMath, 60, 30, 5),
			study(domain.CategoryScience, 40, 25, 5),
		}},
		{DayType: domain.DaySummerNoClub, Blocks: []BlockConfig{
			study(domain.CategoryMath, 120, 30, 5),
			study(domain.CategoryEnglish, 120, 30, 5),
			study(domain.CategoryScience, 60, 25, 5),
			study(domain.CategorySocial, 60, 20, 5),
		}},
		{DayType: domain.DayMatch, Blocks: []BlockConfig{
			study(domain.CategoryEnglish, 30, 30, 5),
		}},
		{DayType: domain.DayEvent, Blocks: []BlockConfig{
			study(domain.CategoryEnglish, 30, 30, 5),
		}},
	}
}

func defaultPhaseContent() []PhaseContentRule {
	return []PhaseContentRule{
		{domain.CategoryEnglish, domain.PhaseFoundation, "Vocabulary and grammar drills"},
		{domain.CategoryEnglish, domain.PhasePractice, "Long-form reading practice"},
		{domain.CategoryEnglish, domain.PhaseFinal, "Past exam papers under time pressure"},
		{domain.CategoryMath, domain.PhaseFoundation, "Core textbook examples and exercises"},
		{domain.CategoryMath, domain.PhasePractice, "Mixed problem sets by topic"},
		{domain.CategoryMath, domain.PhaseFinal, "Timed past papers and weak-area drills"},
		{domain.CategoryJapanese, domain.PhaseFoundation, "Classical grammar and kanji"},
		{domain.CategoryJapanese, domain.PhasePractice, "Passage comprehension sets"},
		{domain.CategoryJapanese, domain.PhaseFinal, "Past exam papers"},
		{domain.CategoryScience, domain.PhaseFoundation, "Concept review with worked examples"},
		{domain.CategoryScience, domain.PhasePractice, "Topic problem sets"},
		{domain.CategoryScience, domain.PhaseFinal, "Past papers and formula recall"},
		{domain.CategorySocial, domain.PhaseFoundation, "Outline reading and term lists"},
		{domain.CategorySocial, domain.PhasePractice, "Question-bank drills"},
		{domain.CategorySocial, domain.PhaseFinal, "Rapid-fire recall and past papers"},
	}
}

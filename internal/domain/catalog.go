package domain

// SubjectInfo is one entry in the static subject catalog.
type SubjectInfo struct {
	ID                string
	Name              string
	MaxScore          int
	ExamMin           int
	Category          SubjectCategory
	Pedagogy          PedagogicalType
	MemorizationRatio float64
	CrammingEffective bool
	// ContinuityCritical subjects must receive some daily practice time
	// regardless of the heuristic allocation outcome.
	ContinuityCritical bool
}

// subjectCatalog is the static per-subject metadata table. Category is an
// explicit mapping validated here at definition time, never inferred from
// id string patterns.
var subjectCatalog = map[string]SubjectInfo{
	"eng_r": {
		ID: "eng_r", Name: "English Reading", MaxScore: 100, ExamMin: 80,
		Category: CategoryEnglish, Pedagogy: PedagogyMixed,
		MemorizationRatio: 0.4, ContinuityCritical: true,
	},
	"eng_l": {
		ID: "eng_l", Name: "English Listening", MaxScore: 100, ExamMin: 60,
		Category: CategoryEnglish, Pedagogy: PedagogyMixed,
		MemorizationRatio: 0.5, ContinuityCritical: true,
	},
	"math_1a": {
		ID: "math_1a", Name: "Math I/A", MaxScore: 100, ExamMin: 70,
		Category: CategoryMath, Pedagogy: PedagogyThinking,
		MemorizationRatio: 0.2, ContinuityCritical: true,
	},
	"math_2b": {
		ID: "math_2b", Name: "Math II/B/C", MaxScore: 100, ExamMin: 70,
		Category: CategoryMath, Pedagogy: PedagogyThinking,
		MemorizationRatio: 0.2, ContinuityCritical: true,
	},
	"japanese": {
		ID: "japanese", Name: "Japanese", MaxScore: 200, ExamMin: 90,
		Category: CategoryJapanese, Pedagogy: PedagogyMixed,
		MemorizationRatio: 0.5,
	},
	"physics": {
		ID: "physics", Name: "Physics", MaxScore: 100, ExamMin: 60,
		Category: CategoryScience, Pedagogy: PedagogyThinking,
		MemorizationRatio: 0.3,
	},
	"chemistry": {
		ID: "chemistry", Name: "Chemistry", MaxScore: 100, ExamMin: 60,
		Category: CategoryScience, Pedagogy: PedagogyMixed,
		MemorizationRatio: 0.6, CrammingEffective: true,
	},
	"biology": {
		ID: "biology", Name: "Biology", MaxScore: 100, ExamMin: 60,
		Category: CategoryScience, Pedagogy: PedagogyMemorization,
		MemorizationRatio: 0.8, CrammingEffective: true,
	},
	"geography": {
		ID: "geography", Name: "Geography", MaxScore: 100, ExamMin: 60,
		Category: CategorySocial, Pedagogy: PedagogyMemorization,
		MemorizationRatio: 0.7, CrammingEffective: true,
	},
	"history_jp": {
		ID: "history_jp", Name: "Japanese History", MaxScore: 100, ExamMin: 60,
		Category: CategorySocial, Pedagogy: PedagogyMemorization,
		MemorizationRatio: 0.9, CrammingEffective: true,
	},
	"history_world": {
		ID: "history_world", Name: "World History", MaxScore: 100, ExamMin: 60,
		Category: CategorySocial, Pedagogy: PedagogyMemorization,
		MemorizationRatio: 0.9, CrammingEffective: true,
	},
	"civics": {
		ID: "civics", Name: "Civics", MaxScore: 100, ExamMin: 60,
		Category: CategorySocial, Pedagogy: PedagogyMemorization,
		MemorizationRatio: 0.8, CrammingEffective: true,
	},
	"info": {
		ID: "info", Name: "Information I", MaxScore: 100, ExamMin: 60,
		Category: CategoryScience, Pedagogy: PedagogyMixed,
		MemorizationRatio: 0.5, CrammingEffective: true,
	},
}

// CatalogSubjectIDs lists the catalog ids in a fixed display order.
var CatalogSubjectIDs = []string{
	"eng_r", "eng_l", "math_1a", "math_2b", "japanese",
	"physics", "chemistry", "biology",
	"geography", "history_jp", "history_world", "civics", "info",
}

// LookupSubject returns catalog metadata for a subject id. Unknown ids
// degrade to sensible defaults rather than failing.
func LookupSubject(id string) SubjectInfo {
	if info, ok := subjectCatalog[id]; ok {
		return info
	}
	return SubjectInfo{
		ID:                id,
		Name:              id,
		MaxScore:          100,
		ExamMin:           60,
		Category:          CategoryUnknown,
		Pedagogy:          PedagogyThinking,
		MemorizationRatio: 0.5,
	}
}

// IsContinuityCritical reports whether the subject must receive a daily
// practice floor.
func IsContinuityCritical(subjectID string) bool {
	return LookupSubject(subjectID).ContinuityCritical
}

package domain

import "time"

// ReviewSource ties a review task back to the original learning event
// it revisits. Present only on tasks of type review.
type ReviewSource struct {
	OriginalDate time.Time
	ReviewNumber int
}

// StudyTask is one atomic unit of scheduled work. Task ids for a given
// date are recomputed on every plan regeneration; only completed tasks
// keep their ids, preserved verbatim in history.
type StudyTask struct {
	ID            string
	SubjectID     string
	Type          TaskType
	Content       string
	PomodoroType  PomodoroType
	PomodoroCount int
	EstimatedMin  int
	ReviewSource  *ReviewSource

	Completed   bool
	ActualMin   *int
	CompletedAt *time.Time
}

// IsReview reports whether the task belongs to a spaced-repetition series.
func (t StudyTask) IsReview() bool {
	return t.ReviewSource != nil
}

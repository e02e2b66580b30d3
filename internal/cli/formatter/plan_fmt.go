package formatter

import (
	"fmt"
	"strings"

	"github.com/hsato/studyplan/internal/domain"
)

// FormatPlan renders one daily plan as the main `plan` command output.
func FormatPlan(p *domain.DailyPlan) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Plan for %s", PlanDate(p.Date))))
	b.WriteString("\n")
	b.WriteString(PhaseIndicator(p.Phase, p.DaysLeft))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s available\n",
		DayTypeLabel(p), Bold(Minutes(p.AvailableMin))))

	if len(p.Tasks) == 0 {
		b.WriteString("\n")
		b.WriteString(Dim("Nothing scheduled."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	for i, task := range p.Tasks {
		b.WriteString(formatTaskLine(i+1, task))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total %s of %s  %s\n",
		Minutes(p.TotalEstimatedMin()), Minutes(p.AvailableMin),
		RenderProgress(p.CompletionRate, 20)))

	return b.String()
}

func formatTaskLine(seq int, t domain.StudyTask) string {
	info := domain.LookupSubject(t.SubjectID)

	line := fmt.Sprintf("%s %2d. %-20s %s %s  %s",
		CheckMark(t.Completed), seq, info.Name,
		PomodoroLabel(t.PomodoroType),
		Dim(fmt.Sprintf("%d×", t.PomodoroCount)),
		Minutes(t.EstimatedMin))

	if t.IsReview() {
		line += "  " + StylePurple.Render(fmt.Sprintf("review #%d", t.ReviewSource.ReviewNumber))
	}
	if t.Content != "" {
		line += "\n      " + Dim(t.Content)
	}
	return line
}

// FormatTaskIDs renders the id column used by `plan --ids`, so a task can
// be passed to `done` or `timer`.
func FormatTaskIDs(p *domain.DailyPlan) string {
	var b strings.Builder
	for i, task := range p.Tasks {
		info := domain.LookupSubject(task.SubjectID)
		b.WriteString(fmt.Sprintf("%2d. %-36s %s\n", i+1, task.ID, Dim(info.Name)))
	}
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/hsato/studyplan/internal/domain"
)

// FormatProfile renders the `profile show` output.
func FormatProfile(p *domain.StudentProfile) string {
	var b strings.Builder

	b.WriteString(Header("Profile"))
	b.WriteString("\n")
	if p.Name != "" {
		b.WriteString(fmt.Sprintf("Name       %s\n", Bold(p.Name)))
	}
	b.WriteString(fmt.Sprintf("Exam date  %s\n", Bold(domain.FormatDate(p.ExamDate))))
	if p.StudyStartDate != nil {
		b.WriteString(fmt.Sprintf("Start      %s\n", domain.FormatDate(*p.StudyStartDate)))
	}

	s := p.Schedule
	b.WriteString(fmt.Sprintf("Day        %s – %s, school %s – %s\n",
		s.WakeTime, s.BedTime, s.SchoolStart, s.SchoolEnd))
	b.WriteString(fmt.Sprintf("Overhead   commute %s one-way, meals/bath %s, buffer %s\n",
		Minutes(s.CommuteMin), Minutes(s.MealBathMin), Minutes(s.BufferMin)))
	if len(s.ClubWeekdays) > 0 {
		days := make([]string, len(s.ClubWeekdays))
		for i, d := range s.ClubWeekdays {
			days[i] = d.String()[:3]
		}
		b.WriteString(fmt.Sprintf("Club       %s, %s – %s\n",
			strings.Join(days, " "), s.ClubStart, s.ClubEnd))
	}

	b.WriteString("\n")
	b.WriteString(Header("Subjects"))
	b.WriteString("\n")
	if len(p.Subjects) == 0 {
		b.WriteString(Dim("No subjects selected."))
		b.WriteString("\n")
		return b.String()
	}
	for _, sub := range p.Subjects {
		b.WriteString(formatSubjectLine(sub))
		b.WriteString("\n")
	}
	return b.String()
}

func formatSubjectLine(sub domain.SelectedSubject) string {
	info := domain.LookupSubject(sub.SubjectID)
	pct := 0.0
	if info.MaxScore > 0 {
		pct = float64(sub.CurrentScore) / float64(info.MaxScore)
	}
	mark := ""
	if info.ContinuityCritical {
		mark = "  " + StyleBlue.Render("critical")
	}
	return fmt.Sprintf("%-20s %3d → %3d  difficulty %d  %s%s",
		info.Name, sub.CurrentScore, sub.TargetScore, sub.Difficulty,
		RenderProgress(pct, 12), mark)
}

// FormatSubjectCatalog renders the selectable subject table for
// `subject list`.
func FormatSubjectCatalog(selected map[string]bool) string {
	var b strings.Builder
	b.WriteString(Header("Subject catalog"))
	b.WriteString("\n")
	for _, id := range domain.CatalogSubjectIDs {
		info := domain.LookupSubject(id)
		mark := Dim("·")
		if selected[id] {
			mark = StyleGreen.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s %-14s %-20s max %3d  %s\n",
			mark, id, info.Name, info.MaxScore, Dim(string(info.Category))))
	}
	return b.String()
}

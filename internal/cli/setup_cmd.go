package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

var weekdayByName = map[string]time.Weekday{
	"Monday": time.Monday, "Tuesday": time.Tuesday, "Wednesday": time.Wednesday,
	"Thursday": time.Thursday, "Friday": time.Friday,
}

func newSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive first-run profile wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("setup needs an interactive terminal; use `profile set` and `subject set` instead")
			}
			return runSetupWizard(app)
		},
	}
}

func runSetupWizard(app *App) error {
	ctx := context.Background()

	name := ""
	examDate := "2026-01-17"
	wake, bed := "06:30", "23:00"
	schoolStart, schoolEnd := "08:30", "15:30"
	commute, meals, buffer := "30", "90", "30"

	basics := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Your name").Value(&name),
			huh.NewInput().Title("Exam date").Description("YYYY-MM-DD").
				Validate(validateDate).Value(&examDate),
		),
		huh.NewGroup(
			huh.NewInput().Title("Wake time").Validate(validateClock).Value(&wake),
			huh.NewInput().Title("Bed time").Validate(validateClock).Value(&bed),
			huh.NewInput().Title("School starts").Validate(validateClock).Value(&schoolStart),
			huh.NewInput().Title("School ends").Validate(validateClock).Value(&schoolEnd),
			huh.NewInput().Title("One-way commute (minutes)").Validate(validateInt).Value(&commute),
			huh.NewInput().Title("Meals and bath (minutes)").Validate(validateInt).Value(&meals),
			huh.NewInput().Title("Free-time buffer (minutes)").Validate(validateInt).Value(&buffer),
		),
	).WithTheme(studyplanHuhTheme())
	if err := basics.Run(); err != nil {
		return err
	}

	hasClub := false
	var clubDays []string
	clubStart, clubEnd := "16:00", "18:30"
	clubForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Club activities?").Value(&hasClub),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Practice days").
				Options(wizardWeekdayOptions()...).Value(&clubDays),
			huh.NewInput().Title("Practice starts").Validate(validateClock).Value(&clubStart),
			huh.NewInput().Title("Practice ends").Validate(validateClock).Value(&clubEnd),
		).WithHideFunc(func() bool { return !hasClub }),
	).WithTheme(studyplanHuhTheme())
	if err := clubForm.Run(); err != nil {
		return err
	}

	var subjectIDs []string
	subjectForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Which subjects?").
				Options(wizardSubjectOptions()...).
				Validate(func(ids []string) error {
					if len(ids) == 0 {
						return fmt.Errorf("pick at least one subject")
					}
					return nil
				}).
				Value(&subjectIDs),
		),
	).WithTheme(studyplanHuhTheme())
	if err := subjectForm.Run(); err != nil {
		return err
	}

	subjects := make([]domain.SelectedSubject, 0, len(subjectIDs))
	for _, id := range subjectIDs {
		info := domain.LookupSubject(id)
		cur, tgt, diff := "50", "80", "3"
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("%s — current score (max %d)", info.Name, info.MaxScore)).
					Validate(validateInt).Value(&cur),
				huh.NewInput().
					Title(fmt.Sprintf("%s — target score", info.Name)).
					Validate(validateInt).Value(&tgt),
				huh.NewSelect[string]().
					Title(fmt.Sprintf("%s — difficulty for you", info.Name)).
					Options(
						huh.NewOption("1 (easy)", "1"),
						huh.NewOption("2", "2"),
						huh.NewOption("3", "3"),
						huh.NewOption("4", "4"),
						huh.NewOption("5 (hard)", "5"),
					).Value(&diff),
			),
		).WithTheme(studyplanHuhTheme())
		if err := form.Run(); err != nil {
			return err
		}
		subjects = append(subjects, domain.SelectedSubject{
			SubjectID:    id,
			CurrentScore: parseIntOr(cur, 50),
			TargetScore:  parseIntOr(tgt, 80),
			Difficulty:   parseIntOr(diff, 3),
		})
	}

	exam, err := domain.ParseDate(examDate)
	if err != nil {
		return fmt.Errorf("invalid exam date %q: %w", examDate, err)
	}

	p := &domain.StudentProfile{
		ID:       "default",
		Name:     name,
		ExamDate: exam,
		Schedule: domain.DailySchedule{
			WakeTime:    wake,
			BedTime:     bed,
			SchoolStart: schoolStart,
			SchoolEnd:   schoolEnd,
			CommuteMin:  parseIntOr(commute, 30),
			MealBathMin: parseIntOr(meals, 90),
			BufferMin:   parseIntOr(buffer, 30),
			ClubStart:   clubStart,
			ClubEnd:     clubEnd,
		},
		Subjects: subjects,
	}
	if hasClub {
		for _, d := range clubDays {
			p.Schedule.ClubWeekdays = append(p.Schedule.ClubWeekdays, weekdayByName[d])
		}
	}

	if err := app.Profile.Save(ctx, p, app.today()); err != nil {
		return err
	}

	fmt.Printf("Profile saved. Run `studyplan plan` to see today's schedule.\n")
	return nil
}

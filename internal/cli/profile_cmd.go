package cli

import (
	"context"
	"fmt"

	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the student profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileResetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background())
			if err != nil {
				return fmt.Errorf("no profile yet, run `studyplan setup`: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, examDate, startDate string
	var wake, bed, schoolStart, schoolEnd string
	var commute, meals, buffer int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return fmt.Errorf("no profile yet, run `studyplan setup`: %w", err)
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("exam-date") {
				d, err := domain.ParseDate(examDate)
				if err != nil {
					return fmt.Errorf("invalid exam date %q: %w", examDate, err)
				}
				p.ExamDate = d
			}
			if cmd.Flags().Changed("start-date") {
				d, err := domain.ParseDate(startDate)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", startDate, err)
				}
				p.StudyStartDate = &d
			}
			if cmd.Flags().Changed("wake") {
				p.Schedule.WakeTime = wake
			}
			if cmd.Flags().Changed("bed") {
				p.Schedule.BedTime = bed
			}
			if cmd.Flags().Changed("school-start") {
				p.Schedule.SchoolStart = schoolStart
			}
			if cmd.Flags().Changed("school-end") {
				p.Schedule.SchoolEnd = schoolEnd
			}
			if cmd.Flags().Changed("commute") {
				p.Schedule.CommuteMin = commute
			}
			if cmd.Flags().Changed("meals") {
				p.Schedule.MealBathMin = meals
			}
			if cmd.Flags().Changed("buffer") {
				p.Schedule.BufferMin = buffer
			}

			if err := app.Profile.Save(ctx, p, app.today()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated; upcoming plans regenerated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Student name")
	cmd.Flags().StringVar(&examDate, "exam-date", "", "Exam date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "First study date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&wake, "wake", "", "Wake time (HH:MM)")
	cmd.Flags().StringVar(&bed, "bed", "", "Bed time (HH:MM)")
	cmd.Flags().StringVar(&schoolStart, "school-start", "", "School start (HH:MM)")
	cmd.Flags().StringVar(&schoolEnd, "school-end", "", "School end (HH:MM)")
	cmd.Flags().IntVar(&commute, "commute", 0, "One-way commute minutes")
	cmd.Flags().IntVar(&meals, "meals", 0, "Meal and bath minutes per day")
	cmd.Flags().IntVar(&buffer, "buffer", 0, "Free-time buffer minutes per day")

	return cmd
}

func newProfileResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the profile and all derived data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete the profile without --force")
			}
			if err := app.Profile.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion")

	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage selected subjects",
	}

	cmd.AddCommand(
		newSubjectListCmd(app),
		newSubjectSetCmd(app),
		newSubjectRemoveCmd(app),
	)

	return cmd
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the subject catalog and current selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := make(map[string]bool)
			if p, err := app.Profile.Get(context.Background()); err == nil {
				for _, s := range p.Subjects {
					selected[s.SubjectID] = true
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubjectCatalog(selected))
			return nil
		},
	}
}

func newSubjectSetCmd(app *App) *cobra.Command {
	var current, target, difficulty int

	cmd := &cobra.Command{
		Use:   "set SUBJECT_ID",
		Short: "Add or update a subject selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return fmt.Errorf("no profile yet, run `studyplan setup`: %w", err)
			}

			id := args[0]
			info := domain.LookupSubject(id)
			if sub := p.SubjectByID(id); sub != nil {
				if cmd.Flags().Changed("current") {
					sub.CurrentScore = current
				}
				if cmd.Flags().Changed("target") {
					sub.TargetScore = target
				}
				if cmd.Flags().Changed("difficulty") {
					sub.Difficulty = difficulty
				}
			} else {
				p.Subjects = append(p.Subjects, domain.SelectedSubject{
					SubjectID:    id,
					CurrentScore: current,
					TargetScore:  target,
					Difficulty:   difficulty,
				})
			}

			if err := app.Profile.Save(ctx, p, app.today()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", info.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&current, "current", 0, "Current score")
	cmd.Flags().IntVar(&target, "target", 0, "Target score")
	cmd.Flags().IntVar(&difficulty, "difficulty", 3, "Perceived difficulty 1-5")

	return cmd
}

func newSubjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SUBJECT_ID",
		Short: "Remove a subject from the selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			kept := p.Subjects[:0]
			found := false
			for _, s := range p.Subjects {
				if s.SubjectID == args[0] {
					found = true
					continue
				}
				kept = append(kept, s)
			}
			if !found {
				return fmt.Errorf("subject %q is not selected", args[0])
			}
			p.Subjects = kept

			if err := app.Profile.Save(ctx, p, app.today()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
			return nil
		},
	}
}

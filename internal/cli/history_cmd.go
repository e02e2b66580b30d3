package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.History.List(context.Background())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing completed yet."))
				return nil
			}

			// Most recent first.
			if limit > 0 && len(tasks) > limit {
				tasks = tasks[len(tasks)-limit:]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Completed"))
			for i := len(tasks) - 1; i >= 0; i-- {
				t := tasks[i]
				info := domain.LookupSubject(t.SubjectID)
				min := t.EstimatedMin
				if t.ActualMin != nil {
					min = *t.ActualMin
				}
				line := fmt.Sprintf("%s  %-20s %s",
					domain.FormatDate(derefTime(t.CompletedAt)), info.Name, formatter.Minutes(min))
				if t.IsReview() {
					line += "  " + formatter.StylePurple.Render(
						fmt.Sprintf("review #%d", t.ReviewSource.ReviewNumber))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries to show (0 = all)")

	return cmd
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

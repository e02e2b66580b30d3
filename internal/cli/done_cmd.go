package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

// resolveTaskID accepts either a full task id or a 1-based position from
// the plan listing.
func resolveTaskID(plan *domain.DailyPlan, input string) (string, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(plan.Tasks) {
			return "", fmt.Errorf("task number %d out of range 1-%d", n, len(plan.Tasks))
		}
		return plan.Tasks[n-1].ID, nil
	}
	for _, t := range plan.Tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("task not found on this plan: %q", input)
}

func newDoneCmd(app *App) *cobra.Command {
	var dateStr string
	var minutes int

	cmd := &cobra.Command{
		Use:   "done TASK",
		Short: "Mark a task completed (by plan position or task id)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			date := app.today()
			if dateStr != "" {
				d, err := domain.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
				date = d
			}

			plan, err := app.Plans.Plan(ctx, date)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(plan, args[0])
			if err != nil {
				return err
			}

			actual := minutes
			if actual == 0 {
				for _, t := range plan.Tasks {
					if t.ID == taskID {
						actual = t.EstimatedMin
					}
				}
			}

			if err := app.History.Complete(ctx, date, taskID, actual, app.completionTime()); err != nil {
				return err
			}

			updated, err := app.Plans.Plan(ctx, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done. %s\n",
				formatter.RenderProgress(updated.CompletionRate, 20))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Plan date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&minutes, "min", 0, "Actual minutes spent (default: the estimate)")

	return cmd
}

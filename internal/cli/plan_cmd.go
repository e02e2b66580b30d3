package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

// parseDateArg resolves an optional positional date argument against the
// app's reference date.
func parseDateArg(app *App, args []string) (time.Time, error) {
	if len(args) == 0 {
		return app.today(), nil
	}
	switch args[0] {
	case "today":
		return app.today(), nil
	case "tomorrow":
		return app.today().AddDate(0, 0, 1), nil
	}
	d, err := domain.ParseDate(args[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", args[0], err)
	}
	return d, nil
}

func newPlanCmd(app *App) *cobra.Command {
	var regen, showIDs bool

	cmd := &cobra.Command{
		Use:   "plan [DATE]",
		Short: "Show the study plan for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(app, args)
			if err != nil {
				return err
			}

			ctx := context.Background()
			var plan *domain.DailyPlan
			if regen {
				plan, err = app.Plans.Regenerate(ctx, date)
			} else {
				plan, err = app.Plans.Plan(ctx, date)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			if showIDs {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskIDs(plan))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&regen, "regen", false, "Discard the cached plan and recompute it")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "Print task ids for use with done/timer")

	return cmd
}

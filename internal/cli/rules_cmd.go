package cli

import (
	"context"
	"fmt"

	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRulesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and tune the planning rules",
	}

	cmd.AddCommand(
		newRulesShowCmd(app),
		newRulesSetCmd(app),
	)

	return cmd
}

func newRulesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active rule configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Rules.Active(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRules(cfg))
			return nil
		},
	}
}

func newRulesSetCmd(app *App) *cobra.Command {
	var intervals []int
	var reviewCap, graduation int
	var buffer float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update rule settings and regenerate upcoming plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := app.Rules.Active(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("intervals") {
				cfg.Forgetting.IntervalsDays = intervals
			}
			if cmd.Flags().Changed("review-cap") {
				cfg.Forgetting.MaxDailyReviewMin = reviewCap
			}
			if cmd.Flags().Changed("graduation") {
				cfg.Forgetting.GraduationCount = graduation
			}
			if cmd.Flags().Changed("buffer") {
				cfg.General.BufferRatio = buffer
			}

			if err := app.Rules.Save(ctx, cfg, app.today()); err != nil {
				return err
			}

			saved, err := app.Rules.Active(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved rule configuration v%d; upcoming plans regenerated.\n",
				saved.Version)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&intervals, "intervals", nil, "Review intervals in days (e.g. 1,3,7,14,30)")
	cmd.Flags().IntVar(&reviewCap, "review-cap", 0, "Max review minutes per day")
	cmd.Flags().IntVar(&graduation, "graduation", 0, "Completed reviews before a series graduates")
	cmd.Flags().Float64Var(&buffer, "buffer", 0, "Slack ratio reserved out of new learning (0-1)")

	return cmd
}

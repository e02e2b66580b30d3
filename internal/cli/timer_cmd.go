package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer TASK",
		Short: "Run a pomodoro timer for a task and log the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("timer needs an interactive terminal; use `done` to log work directly")
			}

			ctx := context.Background()
			date := app.today()
			plan, err := app.Plans.Plan(ctx, date)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(plan, args[0])
			if err != nil {
				return err
			}

			var task domain.StudyTask
			for _, t := range plan.Tasks {
				if t.ID == taskID {
					task = t
				}
			}
			if task.Completed {
				return fmt.Errorf("task is already completed")
			}

			rules, err := app.Rules.Active(ctx)
			if err != nil {
				return err
			}
			model := newTimerModel(task,
				rules.General.WorkMinFor(task.PomodoroType),
				rules.General.BreakMinFor(task.PomodoroType))

			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}
			result, ok := final.(timerModel)
			if !ok {
				return fmt.Errorf("unexpected timer state")
			}

			if !result.finished {
				if result.workedMin > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Stopped after %s; task left open.\n",
						formatter.Minutes(result.workedMin))
				}
				return nil
			}

			actual := result.workedMin
			if actual == 0 {
				actual = task.EstimatedMin
			}
			if err := app.History.Complete(ctx, date, task.ID, actual, app.completionTime()); err != nil {
				return err
			}

			updated, err := app.Plans.Plan(ctx, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s. %s\n",
				formatter.Minutes(actual), formatter.RenderProgress(updated.CompletionRate, 20))
			return nil
		},
	}

	return cmd
}

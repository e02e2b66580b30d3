package cli

import (
	"time"

	"github.com/hsato/studyplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans   service.PlanService
	Profile service.ProfileService
	Events  service.EventService
	History service.HistoryService
	Rules   service.RulesService

	// Today supplies the reference date for commands that invalidate or
	// generate plans; tests pin it to a fixed date.
	Today func() time.Time

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

func (a *App) today() time.Time {
	if a.Today != nil {
		return a.Today()
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// completionTime returns the timestamp recorded for a task completion.
// The wall clock supplies the time of day, but the calendar date comes
// from today(): review intervals count from the local study day, which
// can differ from the UTC date for most of an evening east of UTC.
func (a *App) completionTime() time.Time {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	elapsed := now.Sub(midnight)
	if elapsed >= 24*time.Hour {
		// 25-hour DST days must not spill into the next date key.
		elapsed = 24*time.Hour - time.Second
	}
	return a.today().Add(elapsed)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyplan",
		Short: "Exam study planner with spaced-repetition reviews",
	}

	root.AddCommand(
		newSetupCmd(app),
		newPlanCmd(app),
		newProfileCmd(app),
		newSubjectCmd(app),
		newEventCmd(app),
		newDoneCmd(app),
		newHistoryCmd(app),
		newTimerCmd(app),
		newRulesCmd(app),
	)

	return root
}

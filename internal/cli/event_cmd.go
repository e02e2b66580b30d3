package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hsato/studyplan/internal/cli/formatter"
	"github.com/hsato/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

// resolveEventID matches a full or prefix event id against the calendar.
func resolveEventID(ctx context.Context, app *App, input string) (string, error) {
	events, err := app.Events.List(ctx)
	if err != nil {
		return "", err
	}

	for _, e := range events {
		if e.ID == input {
			return e.ID, nil
		}
	}

	var matches []string
	for _, e := range events {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("event not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("event id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventRemoveCmd(app),
	)

	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var title, eventType, start, note string
	var days int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a calendar event",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := domain.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			e := &domain.EventDate{
				Title:        title,
				Type:         domain.EventType(eventType),
				StartDate:    startDate,
				DurationDays: days,
				Note:         note,
			}
			if err := app.Events.Add(context.Background(), e, app.today()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s [%s]; affected plans regenerate on next read.\n",
				e.Title, e.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&eventType, "type", "other", "Event type (match|school_event|regular_test|mock_exam|other)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 1, "Duration in days")
	cmd.Flags().StringVar(&note, "note", "", "Free-text note")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List calendar events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Events.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEventList(events))
			return nil
		},
	}
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a calendar event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Events.Remove(ctx, id, app.today()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed event %s.\n", id[:8])
			return nil
		},
	}
}

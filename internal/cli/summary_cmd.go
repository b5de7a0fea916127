package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/clistudy/internal/cli/formatter"
	"github.com/alexanderramin/clistudy/internal/report"
	"github.com/alexanderramin/clistudy/internal/service"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return newSummaryCmd(app, "today", "Show today's study summary", formatter.TodayText,
		func(ctx context.Context, svc service.SessionService) (report.Summary, error) {
			return svc.Today(ctx)
		})
}

func newWeekCmd(app *App) *cobra.Command {
	return newSummaryCmd(app, "week", "Show the last 7 days summary", formatter.WeekText,
		func(ctx context.Context, svc service.SessionService) (report.Summary, error) {
			return svc.Week(ctx)
		})
}

func newSummaryCmd(
	app *App,
	use, short string,
	text formatter.SummaryText,
	summarize func(context.Context, service.SessionService) (report.Summary, error),
) *cobra.Command {
	var box bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, closeStore, err := app.openSessions()
			if err != nil {
				return err
			}
			defer closeStore()

			summary, err := summarize(context.Background(), sessions)
			if err != nil {
				return err
			}

			out := formatter.FormatSummary(summary, text)
			if box {
				out = formatter.FormatSummaryBox(summary, text)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&box, "box", false, "Render the summary as a boxed table")
	return cmd
}

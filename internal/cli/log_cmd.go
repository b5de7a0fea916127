package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/clistudy/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <minutes> <topic>",
		Short: "Log a study session for today",
		Long: `Log a study session for today.

  clistudy log 45 "Go exam prep"

Run without arguments in a terminal to be prompted. Use -- before a
negative number, e.g. clistudy log -- -5 topic.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && app.interactive() {
				return nil
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var in LogInput
			if len(args) == 0 {
				prompted, err := app.PromptLog(ctx)
				if err != nil {
					return err
				}
				in = prompted
			} else {
				minutes, err := parseMinutes(args[0])
				if err != nil {
					return err
				}
				in = LogInput{Minutes: minutes, Topic: args[1]}
			}

			// Reject before the store is opened so nothing on disk changes.
			if err := domain.ValidateMinutes(in.Minutes); err != nil {
				return err
			}

			sessions, closeStore, err := app.openSessions()
			if err != nil {
				return err
			}
			defer closeStore()

			s, err := sessions.LogSession(ctx, in.Minutes, in.Topic)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d minutes for '%s'.\n", s.Minutes, s.Topic)
			return nil
		},
	}
}

func parseMinutes(s string) (int, error) {
	minutes, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid minutes %q", domain.ErrValidation, s)
	}
	return minutes, nil
}

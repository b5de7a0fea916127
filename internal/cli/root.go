package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/clistudy/internal/config"
	"github.com/alexanderramin/clistudy/internal/datadir"
	"github.com/alexanderramin/clistudy/internal/repository"
	"github.com/alexanderramin/clistudy/internal/service"
	"github.com/spf13/cobra"
)

// App holds configuration and the hooks commands need. The session store is
// opened per command, after argument validation.
type App struct {
	Config config.Config

	// Now is the clock; nil means time.Now.
	Now func() time.Time

	// LogOutput receives use-case logs when Config.LogOps is set; nil means stderr.
	LogOutput io.Writer

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// PromptLog asks for a session when `log` is run without arguments.
	PromptLog func(ctx context.Context) (LogInput, error)
}

// LogInput is a session the user wants to record.
type LogInput struct {
	Minutes int
	Topic   string
}

// NewRootCmd creates the top-level "clistudy" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "clistudy",
		Short:         "Track your study time from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Config.Backend.Validate()
		},
	}

	config.BindFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newLogCmd(app),
		newTodayCmd(app),
		newWeekCmd(app),
	)

	return root
}

// openSessions resolves the storage path and wires the session service.
// The returned func closes the store.
func (a *App) openSessions() (service.SessionService, func() error, error) {
	cfg := a.Config
	path, err := datadir.Resolve(cfg.DataDir, cfg.Backend.Ext())
	if err != nil {
		return nil, nil, err
	}

	store, err := repository.OpenSessionStore(cfg.Backend, path)
	if err != nil {
		return nil, nil, err
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogOps {
		w := a.LogOutput
		if w == nil {
			w = os.Stderr
		}
		observer = service.NewLogUseCaseObserver(w, "backend", string(cfg.Backend), "path", path)
	}

	return service.NewSessionService(store, a.Now, observer), store.Close, nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive() && a.PromptLog != nil
}

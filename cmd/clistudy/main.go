package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/clistudy/internal/cli"
	"github.com/alexanderramin/clistudy/internal/cli/formatter"
	"github.com/alexanderramin/clistudy/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Defaults, then config.yaml, then CLISTUDY_* env; flags apply on Execute.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Plain output when piped so scripts see the exact line format.
	formatter.SetPlain(!isTerminal(os.Stdout.Fd()))

	app := &cli.App{
		Config:    cfg,
		Now:       time.Now,
		LogOutput: os.Stderr,
		PromptLog: cli.PromptLogForm,
	}

	// Detect interactive terminal for the log prompt.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

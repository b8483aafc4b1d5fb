// Package app wires configuration, benchmarks, orchestration and presentation
// into the ubench suite runner.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/ubench/internal/bench"
	"github.com/agbru/ubench/internal/config"
	"github.com/agbru/ubench/internal/orchestration"
	"github.com/agbru/ubench/internal/tui"
	"github.com/agbru/ubench/internal/ui"
)

// Application represents the ubench suite runner instance.
type Application struct {
	Config    config.AppConfig
	Factory   bench.Factory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom benchmark Factory for the application.
func WithFactory(f bench.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = bench.NewDefaultFactory()
	}

	programName := "ubench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Listen != "" {
		return a.runServe(ctx, out)
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runSuite(ctx, out)
}

// runTUI launches the live dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	benches := orchestration.GetBenchmarksToRun(a.Config.Bench, a.Factory)
	return tui.Run(ctx, benches, a.Config)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

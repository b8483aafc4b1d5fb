// Package config defines the suite runner configuration and its resolution
// chain: CLI flags > environment variables (UBENCH_*) > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/ubench/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "UBENCH_"

// Default configuration values.
const (
	// DefaultBench selects every registered benchmark.
	DefaultBench = "all"
	// DefaultIterations runs each kernel once, matching the reference
	// one-shot programs.
	DefaultIterations = 1
	// DefaultTimeout bounds the whole run. The kernels finish in
	// microseconds; the margin exists for large --iterations counts.
	DefaultTimeout = 1 * time.Minute
)

// AppConfig holds the complete runtime configuration of the suite runner.
type AppConfig struct {
	// Bench selects the benchmarks to run: a registered name or "all".
	Bench string
	// Iterations is the number of times each kernel is executed; the
	// fastest iteration is reported.
	Iterations int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet reduces output to the kernels' bare parity lines.
	Quiet bool
	// Verbose adds per-run memory and system load details.
	Verbose bool
	// OutputFile is the path to save the results report (empty for none).
	OutputFile string
	// TUI launches the live dashboard instead of the one-shot CLI run.
	TUI bool
	// Listen is the address of the Prometheus metrics endpoint (empty to
	// disable the serve mode).
	Listen string
	// NoColor disables ANSI colors regardless of terminal support.
	NoColor bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags that were not set explicitly, and validates
// the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for usage and parse error output.
//   - availableBenches: The registered benchmark names, used for validation
//     and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, a ConfigError for
//     invalid values, or the flag parse error.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableBenches []string) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Bench, "bench", DefaultBench,
		fmt.Sprintf("benchmark to run: %s or %q", strings.Join(availableBenches, ", "), "all"))
	fs.IntVar(&cfg.Iterations, "iterations", DefaultIterations, "number of executions per kernel (fastest is reported)")
	fs.IntVar(&cfg.Iterations, "i", DefaultIterations, "shorthand for -iterations")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "global timeout for the run")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "emit only the kernels' bare output")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "show memory and system load details")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the results report to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for -output")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the live dashboard")
	fs.StringVar(&cfg.Listen, "listen", "", "serve Prometheus metrics on this address while running continuously")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableBenches); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks the resolved configuration for values no mode can run with.
func validate(cfg AppConfig, availableBenches []string) error {
	if cfg.Iterations < 1 {
		return apperrors.NewConfigError("iterations must be >= 1, got %d", cfg.Iterations)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Bench != DefaultBench && !containsName(availableBenches, cfg.Bench) {
		return apperrors.NewConfigError("unknown benchmark %q (available: %s)",
			cfg.Bench, strings.Join(availableBenches, ", "))
	}
	if cfg.TUI && cfg.Quiet {
		return apperrors.NewConfigError("the dashboard and quiet mode are mutually exclusive")
	}
	return nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

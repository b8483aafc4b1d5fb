package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/ubench/internal/cli"
	apperrors "github.com/agbru/ubench/internal/errors"
	"github.com/agbru/ubench/internal/metrics"
	"github.com/agbru/ubench/internal/orchestration"
	"github.com/agbru/ubench/internal/sysmon"
	"github.com/agbru/ubench/internal/ui"
)

// runSuite orchestrates the one-shot CLI run.
func (a *Application) runSuite(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	benches := orchestration.GetBenchmarksToRun(a.Config.Bench, a.Factory)

	// Skip the banner in quiet mode
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(benches, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	// Execute the runs, measuring the memory footprint around them
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	results := orchestration.ExecuteBenchmarks(ctx, benches, a.Config.Iterations, progressReporter, progressOut)
	delta := metrics.Delta(before, collector.Snapshot())

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	return a.analyzeResultsWithOutput(results, delta, outputCfg, out)
}

// analyzeResultsWithOutput presents the run results and handles the optional
// report file.
func (a *Application) analyzeResultsWithOutput(results []orchestration.RunResult, delta metrics.MemoryDelta, outputCfg cli.OutputConfig, out io.Writer) int {
	// Quiet mode: bare kernel output only, still honoring the golden check.
	if outputCfg.Quiet {
		exitCode := apperrors.ExitSuccess
		for _, res := range results {
			if res.Err != nil {
				fmt.Fprintf(a.ErrWriter, "%v\n", res.Err)
				exitCode = apperrors.ExitErrorGeneric
				continue
			}
			if res.Result.Output != res.Expected {
				exitCode = apperrors.ExitErrorMismatch
			}
			cli.DisplayQuietResult(out, res)
		}
		if err := a.saveReportIfNeeded(results, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return exitCode
	}

	presenter := cli.CLIResultPresenter{}
	exitCode := orchestration.AnalyzeRunResults(results, a.Config.Timeout, a.Config.Verbose, presenter, presenter, out)

	if a.Config.Verbose {
		cli.DisplayRunDetails(delta, sysmon.Sample(), out)
	}

	if exitCode == apperrors.ExitSuccess {
		if err := a.saveReportIfNeeded(results, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if outputCfg.OutputFile != "" {
			fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return exitCode
}

// saveReportIfNeeded writes the report file when one was requested.
func (a *Application) saveReportIfNeeded(results []orchestration.RunResult, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteReportToFile(results, a.Config.Iterations, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
		return err
	}
	return nil
}

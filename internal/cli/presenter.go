package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/ubench/internal/bench"
	apperrors "github.com/agbru/ubench/internal/errors"
	"github.com/agbru/ubench/internal/format"
	"github.com/agbru/ubench/internal/orchestration"
	"github.com/agbru/ubench/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output. It wraps the DisplayProgress function to provide a spinner and
// progress bar display during runs.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing runs.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bench.ProgressUpdate, numBenches int, out io.Writer) {
	DisplayProgress(wg, progressChan, numBenches, out)
}

// CLIColorProvider supplies theme colors to packages that must not depend on
// the ui package directly (e.g. the error handler).
type CLIColorProvider struct{}

// Verify interface compliance.
var _ apperrors.ColorProvider = CLIColorProvider{}

// Red returns the active theme's error color.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the active theme's warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the active theme's reset code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for run results in the command-line
// interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the summary table with benchmark names,
// best iteration times, total durations, and status in a formatted tabular
// layout. Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Run Summary ---\n")

	// Find the maximum column widths for proper alignment
	maxNameLen := 9 // "Benchmark" header length
	maxBestLen := 4 // "Best" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		best := formatTableDuration(res.Result.Best)
		if len(best) > maxBestLen {
			maxBestLen = len(best)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sBenchmark%s%s   %sBest%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-9),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxBestLen-4),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status string
		switch {
		case res.Err != nil:
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		case res.Result.Output != res.Expected:
			status = fmt.Sprintf("%s❌ Output mismatch%s", ui.ColorRed(), ui.ColorReset())
		default:
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		best := formatTableDuration(res.Result.Best)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), best, ui.ColorReset(), padRight("", maxBestLen-len(best)),
			status)
	}
}

// formatTableDuration renders a duration for the summary table, flooring
// sub-microsecond readings that the monotonic clock cannot resolve.
func formatTableDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final run result using the CLI's DisplayResult
// function.
func (CLIResultPresenter) PresentResult(result orchestration.RunResult, verbose bool, out io.Writer) {
	DisplayResult(result, verbose, out)
}

// HandleError handles run errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, limit time.Duration, out io.Writer) int {
	return apperrors.HandleRunError(err, limit, out, CLIColorProvider{})
}

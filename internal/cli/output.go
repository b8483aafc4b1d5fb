// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatRunSummary].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/ubench/internal/format"
	"github.com/agbru/ubench/internal/metrics"
	"github.com/agbru/ubench/internal/orchestration"
	"github.com/agbru/ubench/internal/sysmon"
	"github.com/agbru/ubench/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything but the kernels' parity output.
	Quiet bool
	// Verbose adds memory and system load details to the summary.
	Verbose bool
}

// DisplayQuietResult writes a run's bare kernel output, exactly as the
// standalone program would print it. Used in quiet mode.
//
// Parameters:
//   - out: The output writer.
//   - result: The run to print.
func DisplayQuietResult(out io.Writer, result orchestration.RunResult) {
	io.WriteString(out, result.Result.Output)
}

// DisplayResult shows a completed run with its timing. In verbose mode the
// kernel output is echoed line by line beneath the summary.
//
// Parameters:
//   - result: The run to display.
//   - verbose: Whether to echo the kernel output.
//   - out: The output writer.
func DisplayResult(result orchestration.RunResult, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "\nFastest benchmark: %s%s%s (best iteration %s%s%s over %d iteration(s), total %s).\n",
		ui.ColorGreen(), result.Name, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(result.Result.Best), ui.ColorReset(),
		result.Result.Iterations,
		format.FormatExecutionDuration(result.Duration))
	if verbose {
		fmt.Fprintf(out, "Output:\n%s", result.Result.Output)
	}
}

// DisplayRunDetails shows the memory delta and system load of a run in
// verbose mode.
//
// Parameters:
//   - delta: The runtime memory change measured around the run.
//   - sys: The system load snapshot taken after the run.
//   - out: The output writer.
func DisplayRunDetails(delta metrics.MemoryDelta, sys sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nRun details:\n")
	fmt.Fprintf(out, "  Allocated:  %s\n", format.FormatBytes(delta.AllocatedBytes))
	fmt.Fprintf(out, "  GC cycles:  %d\n", delta.GCCycles)
	fmt.Fprintf(out, "  System:     %s\n", sys)
}

// WriteReportToFile writes the results of a suite run to a file.
//
// Parameters:
//   - results: The run results to save.
//   - iterations: The per-kernel iteration count of the run.
//   - config: Output configuration; no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(results []orchestration.RunResult, iterations int, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# ubench run report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Iterations per kernel: %d\n", iterations)
	fmt.Fprintf(file, "\n")

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(file, "%s: FAILED (%v)\n\n", res.Name, res.Err)
			continue
		}
		fmt.Fprintf(file, "%s: best %s, total %s\n%s\n",
			res.Name,
			format.FormatExecutionDuration(res.Result.Best),
			format.FormatExecutionDuration(res.Duration),
			res.Result.Output)
	}

	return nil
}

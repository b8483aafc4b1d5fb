package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/ubench/internal/bench"
	"github.com/agbru/ubench/internal/config"
	"github.com/agbru/ubench/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the selected benchmarks, iteration count, timeout, and
// environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Running %s%s%s with %s%d%s iteration(s) per kernel and a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Bench, ui.ColorReset(),
		ui.ColorYellow(), cfg.Iterations, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single kernel vs full
// suite).
//
// Parameters:
//   - benches: The benchmarks that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(benches []bench.Benchmark, out io.Writer) {
	var modeDesc string
	if len(benches) > 1 {
		modeDesc = "Parallel run of the full suite"
	} else {
		modeDesc = fmt.Sprintf("Single run of the %s%s%s kernel",
			ui.ColorGreen(), benches[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Run ---\n")
}

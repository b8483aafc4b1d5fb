package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/ubench/internal/bench"
)

// RunResult encapsulates the outcome of a single benchmark run.
// It serves as the shared domain type between orchestration and presentation
// layers.
type RunResult struct {
	// Name is the identifier of the benchmark (e.g. "fib").
	Name string
	// Result holds the kernel output and timing. It is meaningful only when
	// Err is nil.
	Result bench.Result
	// Expected is the benchmark's golden output, captured at run time so the
	// analysis stage needs no registry access.
	Expected string
	// Duration is the total wall time of the run across all iterations.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner, progress
// bar, dashboard) while orchestration focuses on coordinating the runs.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from benchmarks.
	//   - numBenches: The number of concurrent benchmarks being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bench.ProgressUpdate, numBenches int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
// This allows passing a function directly where a ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan bench.ProgressUpdate, numBenches int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bench.ProgressUpdate, numBenches int, out io.Writer) {
	f(wg, progressChan, numBenches, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bench.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting run results.
// This decouples orchestration from presentation concerns, allowing different
// output formats without modifying the analysis logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the summary table of all runs.
	PresentComparisonTable(results []RunResult, out io.Writer)

	// PresentResult displays a single run's result.
	PresentResult(result RunResult, verbose bool, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, limit time.Duration, out io.Writer) int
}

package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/ubench/internal/bench"
	apperrors "github.com/agbru/ubench/internal/errors"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking benchmark
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// tracerName identifies this package to the OpenTelemetry tracer provider.
const tracerName = "github.com/agbru/ubench/internal/orchestration"

// GetBenchmarksToRun resolves the --bench selection against the factory.
// "all" yields every registered benchmark; otherwise the single named one.
// The selection has already been validated by the config layer, so an unknown
// name here resolves to an empty slice rather than an error.
//
// Parameters:
//   - selection: A registered benchmark name or "all".
//   - factory: The benchmark registry.
//
// Returns:
//   - []bench.Benchmark: The benchmarks to execute.
func GetBenchmarksToRun(selection string, factory bench.Factory) []bench.Benchmark {
	if selection == "all" {
		return factory.GetAll()
	}
	if b, ok := factory.Get(selection); ok {
		return []bench.Benchmark{b}
	}
	return nil
}

// ExecuteBenchmarks orchestrates the concurrent execution of one or more
// benchmarks.
//
// It manages the lifecycle of the run goroutines, collects their results,
// and coordinates the display of progress updates. Each run is wrapped in an
// OpenTelemetry span; with the default no-op tracer provider this costs
// nothing, and a host application installing a real provider gets per-kernel
// traces for free.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - benches: The benchmarks to execute.
//   - iterations: The number of kernel executions per benchmark.
//   - progressReporter: The progress reporter for displaying updates (use
//     NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []RunResult: A slice containing the result of each run, in input order.
func ExecuteBenchmarks(ctx context.Context, benches []bench.Benchmark, iterations int, progressReporter ProgressReporter, out io.Writer) []RunResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]RunResult, len(benches))
	progressChan := make(chan bench.ProgressUpdate, len(benches)*ProgressBufferMultiplier)
	tracer := otel.Tracer(tracerName)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(benches), out)

	for i, b := range benches {
		idx, benchmark := i, b
		g.Go(func() error {
			runCtx, span := tracer.Start(ctx, "bench.run",
				attributeOption(benchmark.Name(), iterations))
			defer span.End()

			startTime := time.Now()
			res, err := benchmark.Run(runCtx, progressChan, idx, iterations)
			if err != nil {
				err = apperrors.BenchmarkError{Bench: benchmark.Name(), Cause: err}
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			results[idx] = RunResult{
				Name:     benchmark.Name(),
				Result:   res,
				Expected: benchmark.Golden(),
				Duration: time.Since(startTime),
				Err:      err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// attributeOption builds the span attributes for a benchmark run.
func attributeOption(name string, iterations int) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("bench.name", name),
		attribute.Int("bench.iterations", iterations),
	)
}

// AnalyzeRunResults processes the results of a suite run and generates a
// summary report.
//
// It sorts the results by execution time, checks every successful run's
// output against its golden value, and displays a comparative table. A
// mismatch is the suite's hard failure: a kernel that terminates but prints
// the wrong answer is worse than one that errors out.
//
// Parameters:
//   - results: The run results to analyze.
//   - timeout: The configured run timeout, used to phrase error messages.
//   - verbose: Whether to present per-run detail for the fastest run.
//   - presenter: The result presenter for display formatting.
//   - errHandler: The handler mapping errors to exit codes.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeRunResults(results []RunResult, timeout time.Duration, verbose bool, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *RunResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValid == nil {
				firstValid = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No benchmark could complete its run.\n")
		return errHandler.HandleError(firstError, timeout, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && res.Result.Output != res.Expected {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Benchmark %q produced output differing from its golden value.\n", res.Name)
			mismatch = true
		}
	}
	if mismatch {
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All outputs match their golden values.\n")
	presenter.PresentResult(*firstValid, verbose, out)
	return apperrors.ExitSuccess
}

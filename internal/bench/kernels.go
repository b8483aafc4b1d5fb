package bench

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/ubench/internal/fibonacci"
	"github.com/agbru/ubench/internal/sorting"
)

// sortBenchmark wraps the bubble sort kernel. The adaptive flag selects the
// early-exit variant; output is identical either way.
type sortBenchmark struct {
	name     string
	adaptive bool
}

// Name returns the registry identifier of the benchmark.
func (s *sortBenchmark) Name() string { return s.name }

// Golden returns the sorted fixed input, one integer per line.
func (s *sortBenchmark) Golden() string {
	var sb strings.Builder
	for i := 1; i <= sorting.InputSize; i++ {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Run executes the sort kernel iterations times on fresh copies of the fixed
// input and returns the parity output of the final execution.
func (s *sortBenchmark) Run(ctx context.Context, progressChan chan<- ProgressUpdate, benchIndex, iterations int) (Result, error) {
	if iterations < 1 {
		iterations = 1
	}

	var (
		best time.Duration
		xs   []int
	)
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		xs = sorting.Input()
		start := time.Now()
		if s.adaptive {
			sorting.BubbleSortAdaptive(xs)
		} else {
			sorting.BubbleSort(xs)
		}
		elapsed := time.Since(start)

		if best == 0 || elapsed < best {
			best = elapsed
		}
		reportProgress(progressChan, benchIndex, float64(i+1)/float64(iterations))
	}

	var sb strings.Builder
	for _, v := range xs {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte('\n')
	}
	return Result{Output: sb.String(), Iterations: iterations, Best: best}, nil
}

// fibBenchmark wraps the wrapping int64 Fibonacci kernel at the fixed
// reference depth.
type fibBenchmark struct{}

// Name returns the registry identifier of the benchmark.
func (f *fibBenchmark) Name() string { return "fib" }

// Golden returns the wrapped 1000th term as a single decimal line.
func (f *fibBenchmark) Golden() string {
	return strconv.FormatInt(fibonacci.Term1000, 10) + "\n"
}

// Run executes the Fibonacci kernel iterations times and returns the parity
// output of the final execution.
func (f *fibBenchmark) Run(ctx context.Context, progressChan chan<- ProgressUpdate, benchIndex, iterations int) (Result, error) {
	if iterations < 1 {
		iterations = 1
	}

	var (
		best time.Duration
		term int64
	)
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		start := time.Now()
		term = fibonacci.Tail(fibonacci.DefaultTerm)
		elapsed := time.Since(start)

		if best == 0 || elapsed < best {
			best = elapsed
		}
		reportProgress(progressChan, benchIndex, float64(i+1)/float64(iterations))
	}

	return Result{
		Output:     strconv.FormatInt(term, 10) + "\n",
		Iterations: iterations,
		Best:       best,
	}, nil
}

//go:generate mockgen -source=bench.go -destination=mocks/mock_bench.go -package=mocks

// Package bench defines the benchmark abstraction shared by the suite runner,
// the orchestration layer and the presentation layers, together with the
// default registry of kernels.
package bench

import (
	"context"
	"time"
)

// ProgressUpdate carries a normalized progress value from a running benchmark
// to the display layer.
type ProgressUpdate struct {
	// BenchIndex identifies which of the concurrently running benchmarks
	// sent the update.
	BenchIndex int
	// Value is the normalized progress (0.0 to 1.0) across the requested
	// iterations.
	Value float64
}

// Result is the outcome of a benchmark run.
type Result struct {
	// Output is the stdout-parity text of a single kernel execution, exactly
	// as the standalone program would print it.
	Output string
	// Iterations is the number of kernel executions performed.
	Iterations int
	// Best is the shortest single-iteration wall time observed.
	Best time.Duration
}

// Benchmark is a self-contained, deterministic workload with a known expected
// output.
//
// Run executes the kernel the requested number of times, reporting progress
// on progressChan (which must not be closed by the implementation), and
// returns the parity output of the final execution. Implementations honor
// context cancellation between iterations; the kernels themselves are too
// short to interrupt mid-flight.
type Benchmark interface {
	// Name returns the registry identifier of the benchmark (e.g. "fib").
	Name() string
	// Run executes the kernel iterations times.
	Run(ctx context.Context, progressChan chan<- ProgressUpdate, benchIndex, iterations int) (Result, error)
	// Golden returns the expected parity output of a single execution.
	Golden() string
}

// Factory provides access to the registered benchmarks. It decouples the
// application wiring from the concrete kernel set, which keeps the
// orchestration layer testable against mock benchmarks.
type Factory interface {
	// Get returns the benchmark registered under name.
	Get(name string) (Benchmark, bool)
	// List returns the registered names in registration order.
	List() []string
	// GetAll returns all registered benchmarks in registration order.
	GetAll() []Benchmark
}

// defaultFactory is the production Factory backed by an ordered registry.
type defaultFactory struct {
	order   []string
	entries map[string]Benchmark
}

// NewDefaultFactory returns the Factory holding the standard kernel set:
// "sort" (fixed-pass bubble sort), "sort/adaptive" (early-exit variant) and
// "fib" (wrapping int64 Fibonacci to term 1000).
func NewDefaultFactory() Factory {
	f := &defaultFactory{entries: make(map[string]Benchmark)}
	f.register(&sortBenchmark{name: "sort"})
	f.register(&sortBenchmark{name: "sort/adaptive", adaptive: true})
	f.register(&fibBenchmark{})
	return f
}

func (f *defaultFactory) register(b Benchmark) {
	f.order = append(f.order, b.Name())
	f.entries[b.Name()] = b
}

// Get returns the benchmark registered under name.
func (f *defaultFactory) Get(name string) (Benchmark, bool) {
	b, ok := f.entries[name]
	return b, ok
}

// List returns the registered names in registration order.
func (f *defaultFactory) List() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

// GetAll returns all registered benchmarks in registration order.
func (f *defaultFactory) GetAll() []Benchmark {
	all := make([]Benchmark, 0, len(f.order))
	for _, name := range f.order {
		all = append(all, f.entries[name])
	}
	return all
}

// reportProgress sends a non-blocking progress update. Dropping an update is
// preferable to stalling the benchmark loop on a slow display consumer.
func reportProgress(progressChan chan<- ProgressUpdate, benchIndex int, value float64) {
	if progressChan == nil {
		return
	}
	select {
	case progressChan <- ProgressUpdate{BenchIndex: benchIndex, Value: value}:
	default:
	}
}

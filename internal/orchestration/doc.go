// Package orchestration coordinates the concurrent execution of benchmarks
// and the analysis of their results. It owns the concurrency model of the
// suite runner and is deliberately free of presentation concerns, which it
// reaches only through the ProgressReporter and ResultPresenter interfaces.
package orchestration

package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/ubench/internal/bench"
	apperrors "github.com/agbru/ubench/internal/errors"
	"github.com/agbru/ubench/internal/logging"
	"github.com/agbru/ubench/internal/orchestration"
	"github.com/agbru/ubench/internal/server"
)

// serveRunInterval is the pause between run cycles in serve mode. The
// kernels are microsecond-scale; a continuous tight loop would saturate a
// core while producing statistically identical samples.
const serveRunInterval = time.Second

// runServe runs the benchmark loop continuously while exposing Prometheus
// metrics on the configured address. The loop stops on SIGINT/SIGTERM or
// when the timeout elapses.
func (a *Application) runServe(ctx context.Context, _ io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewLogger(a.ErrWriter, "serve")
	m := server.NewMetrics()
	srv := server.NewServer(a.Config.Listen, m, logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(ctx)
	}()

	benches := orchestration.GetBenchmarksToRun(a.Config.Bench, a.Factory)
	logger.Info("benchmark loop started",
		logging.String("bench", a.Config.Bench),
		logging.Int("kernels", len(benches)),
		logging.Int("iterations", a.Config.Iterations))

	ticker := time.NewTicker(serveRunInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := <-serverErr; err != nil {
				logger.Error("metrics server failed", logging.Err(err))
				return apperrors.ExitErrorGeneric
			}
			return apperrors.ExitSuccess
		case err := <-serverErr:
			if err != nil {
				logger.Error("metrics server failed", logging.Err(err))
				return apperrors.ExitErrorGeneric
			}
			return apperrors.ExitSuccess
		case <-ticker.C:
			a.runCycle(ctx, benches, m, logger)
		}
	}
}

// runCycle executes one metrics-instrumented pass over the benchmarks.
func (a *Application) runCycle(ctx context.Context, benches []bench.Benchmark, m *server.Metrics, logger logging.Logger) {
	for range benches {
		m.RunStarted()
	}
	results := orchestration.ExecuteBenchmarks(ctx, benches, a.Config.Iterations, orchestration.NullProgressReporter{}, nil)
	for _, res := range results {
		m.RunFinished(res.Name, res.Duration, res.Err)
		if res.Err != nil && !apperrors.IsContextError(res.Err) {
			logger.Warn("benchmark run failed", logging.String("bench", res.Name), logging.Err(res.Err))
		}
		if res.Err == nil && res.Result.Output != res.Expected {
			logger.Error("benchmark output mismatch", logging.String("bench", res.Name))
		}
	}
}

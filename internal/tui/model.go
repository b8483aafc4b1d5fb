// Package tui implements the live benchmark dashboard. It repeatedly runs the
// selected kernels and displays run counters, best times and system load,
// updating in place until the user quits.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/ubench/internal/bench"
	"github.com/agbru/ubench/internal/config"
	apperrors "github.com/agbru/ubench/internal/errors"
	"github.com/agbru/ubench/internal/orchestration"
	"github.com/agbru/ubench/internal/sysmon"
)

const (
	// runInterval is the pause between dashboard run cycles. The kernels
	// finish in microseconds; re-running without a pause would just burn CPU
	// for identical numbers.
	runInterval = 500 * time.Millisecond
	// sysInterval is the refresh period of the system load header.
	sysInterval = 2 * time.Second
)

// benchRow tracks the dashboard state of one benchmark.
type benchRow struct {
	name     string
	runs     int
	best     time.Duration
	last     time.Duration
	failures int
	mismatch bool
}

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Pause key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns the bindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause}, {k.Help, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause/resume"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Messages driving the dashboard update loop.
type (
	// resultsMsg delivers a completed run cycle.
	resultsMsg []orchestration.RunResult
	// nextRunMsg triggers the next run cycle.
	nextRunMsg struct{}
	// sysMsg delivers a fresh system load sample.
	sysMsg sysmon.Stats
)

// Model is the bubbletea model of the dashboard.
type Model struct {
	ctx        context.Context
	benches    []bench.Benchmark
	iterations int

	rows    []benchRow
	cycles  int
	paused  bool
	width   int
	sys     sysmon.Stats
	spin    spinner.Model
	keys    keyMap
	help    help.Model
	started time.Time
}

// NewModel builds the dashboard model for the given benchmarks.
func NewModel(ctx context.Context, benches []bench.Benchmark, cfg config.AppConfig) Model {
	rows := make([]benchRow, len(benches))
	for i, b := range benches {
		rows[i] = benchRow{name: b.Name()}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		benches:    benches,
		iterations: cfg.Iterations,
		rows:       rows,
		spin:       sp,
		keys:       defaultKeyMap(),
		help:       help.New(),
		started:    time.Now(),
	}
}

// Init schedules the first run cycle, the system sampler, and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runCmd(), m.sysCmd(), m.spin.Tick)
}

// runCmd executes one run cycle of all benchmarks off the UI goroutine.
func (m Model) runCmd() tea.Cmd {
	benches, iterations, ctx := m.benches, m.iterations, m.ctx
	return func() tea.Msg {
		results := orchestration.ExecuteBenchmarks(ctx, benches, iterations, orchestration.NullProgressReporter{}, nil)
		return resultsMsg(results)
	}
}

// sysCmd samples system load after sysInterval.
func (m Model) sysCmd() tea.Cmd {
	return tea.Tick(sysInterval, func(time.Time) tea.Msg {
		return sysMsg(sysmon.Sample())
	})
}

// scheduleNext arms the next run cycle after runInterval.
func scheduleNext() tea.Cmd {
	return tea.Tick(runInterval, func(time.Time) tea.Msg {
		return nextRunMsg{}
	})
}

// Update is the bubbletea update function.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			if !m.paused {
				return m, scheduleNext()
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case resultsMsg:
		m.applyResults(msg)
		if m.paused {
			return m, nil
		}
		return m, scheduleNext()

	case nextRunMsg:
		if m.paused {
			return m, nil
		}
		return m, m.runCmd()

	case sysMsg:
		m.sys = sysmon.Stats(msg)
		return m, m.sysCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// applyResults folds a run cycle into the per-benchmark rows. Results arrive
// sorted by the orchestrator's input order, which matches m.rows.
func (m *Model) applyResults(results []orchestration.RunResult) {
	m.cycles++
	for i := range results {
		if i >= len(m.rows) {
			break
		}
		row := &m.rows[i]
		res := results[i]
		row.runs++
		if res.Err != nil {
			row.failures++
			continue
		}
		row.last = res.Result.Best
		if row.best == 0 || res.Result.Best < row.best {
			row.best = res.Result.Best
		}
		row.mismatch = res.Result.Output != res.Expected
	}
}

// Run launches the dashboard and blocks until it exits.
//
// Parameters:
//   - ctx: The context bounding the dashboard lifetime.
//   - benches: The benchmarks to cycle.
//   - cfg: The application configuration.
//
// Returns:
//   - int: The process exit code.
func Run(ctx context.Context, benches []bench.Benchmark, cfg config.AppConfig) int {
	p := tea.NewProgram(NewModel(ctx, benches, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/ubench/internal/bench"
	"github.com/agbru/ubench/internal/config"
	"github.com/agbru/ubench/internal/orchestration"
)

// newTestModel builds a model over the real benchmark registry.
func newTestModel(t *testing.T) Model {
	t.Helper()
	factory := bench.NewDefaultFactory()
	cfg := config.AppConfig{Iterations: 1}
	return NewModel(context.Background(), factory.GetAll(), cfg)
}

// TestNewModel verifies one row per benchmark, in registry order.
func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if len(m.rows) != len(m.benches) {
		t.Fatalf("got %d rows for %d benchmarks", len(m.rows), len(m.benches))
	}
	for i, b := range m.benches {
		if m.rows[i].name != b.Name() {
			t.Errorf("rows[%d].name = %q, want %q", i, m.rows[i].name, b.Name())
		}
	}
}

// TestUpdate_Quit verifies the quit bindings produce tea.Quit.
func TestUpdate_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c", "esc"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t)

			var msg tea.KeyMsg
			switch k {
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
			}

			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatal("quit key produced no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("quit key produced %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

// TestUpdate_PauseToggle verifies pause stops scheduling and resume restarts
// it.
func TestUpdate_PauseToggle(t *testing.T) {
	m := newTestModel(t)
	pauseKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}

	next, cmd := m.Update(pauseKey)
	m = next.(Model)
	if !m.paused {
		t.Error("first press should pause")
	}
	if cmd != nil {
		t.Error("pausing should not schedule work")
	}

	next, cmd = m.Update(pauseKey)
	m = next.(Model)
	if m.paused {
		t.Error("second press should resume")
	}
	if cmd == nil {
		t.Error("resuming should schedule the next cycle")
	}
}

// TestUpdate_WindowSize verifies width propagation.
func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.width != 120 {
		t.Errorf("width = %d, want 120", m.width)
	}
}

// TestApplyResults folds run cycles into the rows.
func TestApplyResults(t *testing.T) {
	m := newTestModel(t)
	if len(m.rows) < 2 {
		t.Fatal("need at least two registered benchmarks")
	}

	m.applyResults([]orchestration.RunResult{
		{
			Name:     m.rows[0].name,
			Result:   bench.Result{Output: "ok\n", Best: 10 * time.Microsecond},
			Expected: "ok\n",
		},
		{
			Name: m.rows[1].name,
			Err:  errors.New("boom"),
		},
	})

	if m.cycles != 1 {
		t.Errorf("cycles = %d, want 1", m.cycles)
	}
	if m.rows[0].runs != 1 || m.rows[0].best != 10*time.Microsecond || m.rows[0].mismatch {
		t.Errorf("rows[0] = %+v, want one clean run at 10µs", m.rows[0])
	}
	if m.rows[1].failures != 1 {
		t.Errorf("rows[1].failures = %d, want 1", m.rows[1].failures)
	}

	// A faster second run lowers best; a slower one only updates last.
	m.applyResults([]orchestration.RunResult{
		{
			Name:     m.rows[0].name,
			Result:   bench.Result{Output: "ok\n", Best: 4 * time.Microsecond},
			Expected: "ok\n",
		},
	})
	if m.rows[0].best != 4*time.Microsecond {
		t.Errorf("best = %s, want 4µs", m.rows[0].best)
	}

	m.applyResults([]orchestration.RunResult{
		{
			Name:     m.rows[0].name,
			Result:   bench.Result{Output: "ok\n", Best: 8 * time.Microsecond},
			Expected: "ok\n",
		},
	})
	if m.rows[0].best != 4*time.Microsecond {
		t.Errorf("best = %s, slower run should not raise it", m.rows[0].best)
	}
	if m.rows[0].last != 8*time.Microsecond {
		t.Errorf("last = %s, want 8µs", m.rows[0].last)
	}
}

// TestApplyResults_Mismatch flags rows whose output diverges from golden.
func TestApplyResults_Mismatch(t *testing.T) {
	m := newTestModel(t)

	m.applyResults([]orchestration.RunResult{
		{
			Name:     m.rows[0].name,
			Result:   bench.Result{Output: "wrong\n", Best: time.Microsecond},
			Expected: "right\n",
		},
	})
	if !m.rows[0].mismatch {
		t.Error("diverging output should set the mismatch flag")
	}
}

// TestView renders without panicking and names every benchmark.
func TestView(t *testing.T) {
	m := newTestModel(t)
	m.width = 100

	view := m.View()
	for _, row := range m.rows {
		if !strings.Contains(view, row.name) {
			t.Errorf("view missing benchmark %q", row.name)
		}
	}
}

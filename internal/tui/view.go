package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/ubench/internal/format"
	"github.com/agbru/ubench/internal/ui"
)

// styles holds the lipgloss styles of the dashboard, derived from the active
// theme so NO_COLOR propagates into the TUI.
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	name    lipgloss.Style
	value   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	dim     lipgloss.Style
	section lipgloss.Style
}

func newStyles() styles {
	theme := ui.GetCurrentTUITheme()
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		header:  lipgloss.NewStyle().Underline(true).Foreground(theme.Text),
		name:    lipgloss.NewStyle().Foreground(theme.Accent),
		value:   lipgloss.NewStyle().Foreground(theme.Warning),
		good:    lipgloss.NewStyle().Foreground(theme.Success),
		bad:     lipgloss.NewStyle().Foreground(theme.Error),
		dim:     lipgloss.NewStyle().Foreground(theme.Dim),
		section: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border).Padding(0, 1),
	}
}

// View renders the dashboard.
func (m Model) View() string {
	st := newStyles()
	var b strings.Builder

	state := m.spin.View() + " running"
	if m.paused {
		state = "⏸ paused"
	}
	b.WriteString(st.title.Render("ubench dashboard"))
	b.WriteString(st.dim.Render(fmt.Sprintf("  %s  cycle %d  up %s  %s",
		state, m.cycles, time.Since(m.started).Round(time.Second), m.sys)))
	b.WriteString("\n\n")

	b.WriteString(st.section.Render(m.renderTable(st)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// renderTable renders the per-benchmark rows.
func (m Model) renderTable(st styles) string {
	var b strings.Builder
	b.WriteString(st.header.Render(fmt.Sprintf("%-14s %8s %10s %10s %s",
		"benchmark", "runs", "best", "last", "status")))
	b.WriteString("\n")

	for _, row := range m.rows {
		status := st.good.Render("ok")
		switch {
		case row.mismatch:
			status = st.bad.Render("mismatch")
		case row.failures > 0:
			status = st.bad.Render(fmt.Sprintf("%d failures", row.failures))
		case row.runs == 0:
			status = st.dim.Render("pending")
		}
		b.WriteString(fmt.Sprintf("%s %8d %10s %10s %s\n",
			st.name.Render(fmt.Sprintf("%-14s", row.name)),
			row.runs,
			st.value.Render(formatCell(row.best)),
			st.value.Render(formatCell(row.last)),
			status))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatCell renders a duration cell, dimming unresolved readings.
func formatCell(d time.Duration) string {
	if d == 0 {
		return "—"
	}
	return format.FormatExecutionDuration(d)
}

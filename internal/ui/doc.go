// Package ui holds the terminal color themes shared by the CLI and the TUI
// dashboard. It owns the NO_COLOR handling so presentation code can request
// colors unconditionally.
package ui

// Package tui provides the Bubble Tea integration for the snake simulation.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after the
// fixed interval. Re-issued from the tick handler, it forms the scheduler
// loop: step, render, sleep, repeat.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Package tui provides the Bubble Tea integration: the terminal loop,
// input mapping, rendering and the SSH front-end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. It carries the wall-clock
// reading the engine's deadlines are compared against.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified polling rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Package tui provides the Bubble Tea integration for the life viewer.
// It handles the terminal UI loop, input mapping and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. ID names the tick chain
// that scheduled it; a model ignores ticks from any other chain.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var lastTickID atomic.Uint64

// nextTickID returns an ID no other model has used.
func nextTickID() uint64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick for chain id at
// the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 15
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

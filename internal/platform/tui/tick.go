// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and screen orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the loop that scheduled it; ticks from an older loop are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// generations hands out loop ids, unique across all models in the process.
var generations atomic.Uint64

func nextGen() uint64 {
	return generations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick for the given loop.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Package tui provides the Bubble Tea front end for the minefield game.
// It maps keys to actions, drives the play-again loop and renders the
// game's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashFrames is how many ticks the border stays red after a hazard hit.
const flashFrames = 6

// TickMsg is sent while a hazard flash is running.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

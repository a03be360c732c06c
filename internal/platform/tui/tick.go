// Package tui provides the Bubble Tea integration for the CENSOR BOX device.
// It handles the terminal UI loop, input mapping, and round orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/censorbox/internal/round"
)

// FlashDuration is how long a pressed pad stays lit.
const FlashDuration = 150 * time.Millisecond

// ClockMsg is sent once per round.TickInterval to count down a round.
// It carries the round it was scheduled for so ticks for a replaced round
// can be dropped.
type ClockMsg struct {
	RoundID string
}

// clockCmd returns a Bubble Tea command that sends the next clock message.
func clockCmd(roundID string) tea.Cmd {
	return tea.Tick(round.TickInterval, func(time.Time) tea.Msg {
		return ClockMsg{RoundID: roundID}
	})
}

// flashMsg turns off the pad light set by press number seq.
type flashMsg struct {
	seq int
}

// flashCmd schedules the pad light to go out.
func flashCmd(seq int) tea.Cmd {
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return flashMsg{seq: seq}
	})
}

// bootStepMsg advances the boot sequence by one step.
type bootStepMsg struct{}

// bootCmd schedules the next boot step after d.
func bootCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return bootStepMsg{}
	})
}

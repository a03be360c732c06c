// Package round implements the round state machine of the game: word
// queue, cursor, lives, score and countdown. It has no knowledge of the
// terminal, timers or audio; hosts drive it through Controller.Apply and
// Clock.Tick and observe cue requests through an Emitter.
package round

import (
	"fmt"

	"github.com/vovakirdan/censorbox/internal/words"
)

// Status is the lifecycle status of a single slot.
type Status int

const (
	StatusPending Status = iota
	StatusCurrent
	StatusCorrect
	StatusIncorrect
	StatusSkipped
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCurrent:
		return "current"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Resolved reports whether the slot has received its classification.
func (s Status) Resolved() bool {
	return s == StatusCorrect || s == StatusIncorrect || s == StatusSkipped
}

// Phase is the coarse lifecycle state of a round.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can leave this phase.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Config is the immutable per-round configuration chosen at start.
type Config struct {
	Lives      int // Lives at round start
	TimeBudget int // Seconds on the clock
	WordCount  int // Number of slots
}

// Validate reports the first non-positive field. The engine itself accepts
// any Config; this is for configuration layers that want to reject
// degenerate presets up front.
func (c Config) Validate() error {
	switch {
	case c.Lives <= 0:
		return fmt.Errorf("round: lives must be positive, got %d", c.Lives)
	case c.TimeBudget <= 0:
		return fmt.Errorf("round: time budget must be positive, got %d", c.TimeBudget)
	case c.WordCount <= 0:
		return fmt.Errorf("round: word count must be positive, got %d", c.WordCount)
	}
	return nil
}

// Slot is one word awaiting or having received a classification.
type Slot struct {
	ID       string
	Text     string
	Category words.Category
	Status   Status
}

// State is the authoritative round state. It is treated as a value:
// transitions return a new State and leave their input untouched.
type State struct {
	ID            string
	Config        Config
	Slots         []Slot
	Cursor        int
	Score         int
	Lives         int
	TimeRemaining int
	Phase         Phase
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	if s.Slots != nil {
		out.Slots = make([]Slot, len(s.Slots))
		copy(out.Slots, s.Slots)
	}
	return out
}

// Current returns the slot awaiting input, if any.
func (s State) Current() (Slot, bool) {
	if s.Phase != PhaseActive || s.Cursor < 0 || s.Cursor >= len(s.Slots) {
		return Slot{}, false
	}
	slot := s.Slots[s.Cursor]
	if slot.Status != StatusCurrent {
		return Slot{}, false
	}
	return slot, true
}

// Resolved returns the number of slots that have been classified or skipped.
func (s State) Resolved() int {
	n := 0
	for _, slot := range s.Slots {
		if slot.Status.Resolved() {
			n++
		}
	}
	return n
}

// Tally counts resolved slots by outcome.
type Tally struct {
	Correct   int
	Incorrect int
	Skipped   int
}

// Tally returns per-outcome counts for the round so far.
func (s State) Tally() Tally {
	var t Tally
	for _, slot := range s.Slots {
		switch slot.Status {
		case StatusCorrect:
			t.Correct++
		case StatusIncorrect:
			t.Incorrect++
		case StatusSkipped:
			t.Skipped++
		}
	}
	return t
}

// Over reports whether the round has reached a terminal phase.
func (s State) Over() bool {
	return s.Phase.Terminal()
}

package round

import "time"

const (
	// TickInterval is how often the host must call Clock.Tick while a round
	// is active.
	TickInterval = time.Second

	// LowTimeWarning is the remaining time (seconds) at or below which every
	// tick requests the tick cue.
	LowTimeWarning = 10
)

// Clock is the countdown half of the round engine. It never schedules
// itself; the host calls Tick once per TickInterval.
type Clock struct {
	emit Emitter
}

// NewClock creates a clock. A nil emitter discards cues.
func NewClock(emit Emitter) *Clock {
	if emit == nil {
		emit = Discard
	}
	return &Clock{emit: emit}
}

// Tick removes one second from the round. It is a no-op once the round is
// over, so a tick that races an ending input cannot change the result.
func (k *Clock) Tick(s State) State {
	if s.Phase != PhaseActive {
		return s
	}

	next := s.Clone()
	next.TimeRemaining = max(next.TimeRemaining-1, 0)

	switch {
	case next.TimeRemaining == 0:
		next.Phase = PhaseLost
		k.emit.Emit(CueEnd)
	case next.TimeRemaining <= LowTimeWarning:
		k.emit.Emit(CueTick)
	}
	return next
}

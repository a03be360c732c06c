package round

import (
	"context"
	"sync"
	"time"
)

// Session is a mutex-protected round handle for hosts whose input and
// clock run on separate goroutines. Every transition is serialized, so the
// single-current-slot invariant holds under concurrent Apply and Tick.
type Session struct {
	ctrl  *Controller
	clock *Clock

	mu       sync.Mutex
	state    State
	started  bool
	onChange func(State)
}

// NewSession creates a session around a controller and a clock.
func NewSession(ctrl *Controller, clock *Clock) *Session {
	return &Session{ctrl: ctrl, clock: clock}
}

// OnChange registers fn to be called with a copy of the state after every
// transition. fn runs outside the session lock.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Start discards any previous round and begins a new one.
func (s *Session) Start(cfg Config) State {
	return s.transition(func(State) State {
		s.started = true
		return s.ctrl.Start(cfg)
	})
}

// Apply forwards a player action to the current round.
func (s *Session) Apply(a Action) State {
	return s.transition(func(cur State) State {
		return s.ctrl.Apply(cur, a)
	})
}

// Tick advances the current round's clock by one second.
func (s *Session) Tick() State {
	return s.transition(s.clock.Tick)
}

// State returns a copy of the current round state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Session) transition(fn func(State) State) State {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return State{}
	}
	s.state = fn(s.state)
	out := s.state.Clone()
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(out.Clone())
	}
	return out
}

// tickRound ticks only if roundID is still the active round. It reports
// whether the clock should keep running.
func (s *Session) tickRound(roundID string) bool {
	s.mu.Lock()
	if s.state.ID != roundID || s.state.Phase != PhaseActive {
		s.mu.Unlock()
		return false
	}
	s.state = s.clock.Tick(s.state)
	out := s.state.Clone()
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(out)
	}
	return out.Phase == PhaseActive
}

// RunClock ticks the round that is current when it is called, once per
// interval, until that round ends or is replaced by Start. It returns nil
// in those cases and ctx.Err() when the context is cancelled first.
func (s *Session) RunClock(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = TickInterval
	}

	s.mu.Lock()
	roundID := s.state.ID
	active := s.started && s.state.Phase == PhaseActive
	s.mu.Unlock()
	if !active {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.tickRound(roundID) {
				return nil
			}
		}
	}
}

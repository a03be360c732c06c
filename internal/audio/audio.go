// Package audio turns round cue requests into something a terminal can
// express: BEL characters, log lines and a visual cue history. Sinks are
// composable and all satisfy round.Emitter.
package audio

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/censorbox/internal/round"
)

// Bell rings the terminal bell for a subset of cues.
type Bell struct {
	mu    sync.Mutex
	w     io.Writer
	rings map[round.Cue]int
}

// NewBell creates a bell writing to w for the given cues. The end cue
// rings twice so a finished round is distinguishable from a mistake.
func NewBell(w io.Writer, cues ...round.Cue) *Bell {
	rings := make(map[round.Cue]int, len(cues))
	for _, c := range cues {
		rings[c] = 1
		if c == round.CueEnd {
			rings[c] = 2
		}
	}
	return &Bell{w: w, rings: rings}
}

// Emit writes the BEL pattern for c, if any.
func (b *Bell) Emit(c round.Cue) {
	n := b.rings[c]
	if n == 0 || b.w == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i < n; i++ {
		//nolint:errcheck // Best-effort, a missed bell is harmless
		b.w.Write([]byte{'\a'})
	}
}

// LogSink logs every cue at debug level.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink logging to logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit logs c.
func (l *LogSink) Emit(c round.Cue) {
	if l.logger == nil {
		return
	}
	l.logger.Debug("cue", "name", c.String())
}

// Switch forwards cues to its sink unless muted.
type Switch struct {
	sink  round.Emitter
	muted atomic.Bool
}

// NewSwitch wraps sink with a mute switch.
func NewSwitch(sink round.Emitter, muted bool) *Switch {
	s := &Switch{sink: sink}
	s.muted.Store(muted)
	return s
}

// Emit forwards c when not muted.
func (s *Switch) Emit(c round.Cue) {
	if s.muted.Load() || s.sink == nil {
		return
	}
	s.sink.Emit(c)
}

// SetMuted sets the mute state.
func (s *Switch) SetMuted(muted bool) {
	s.muted.Store(muted)
}

// Toggle flips the mute state and returns the new value.
func (s *Switch) Toggle() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether the switch is muted.
func (s *Switch) Muted() bool {
	return s.muted.Load()
}

// Fanout forwards each cue to every sink in order.
type Fanout []round.Emitter

// Emit forwards c to all sinks.
func (f Fanout) Emit(c round.Cue) {
	for _, sink := range f {
		if sink != nil {
			sink.Emit(c)
		}
	}
}

// Recorder keeps the cue history.
type Recorder struct {
	mu   sync.Mutex
	cues []round.Cue
}

// Emit appends c to the history.
func (r *Recorder) Emit(c round.Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, c)
	r.mu.Unlock()
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []round.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]round.Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

// Drain returns the recorded cues and clears the history.
func (r *Recorder) Drain() []round.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.cues
	r.cues = nil
	return out
}

package round

import "fmt"

// Cue is a named request for an audio feedback effect. Cues are
// fire-and-forget; the round never waits on a sink.
type Cue int

const (
	CueStart Cue = iota
	CueKeypress
	CueCorrect
	CueWrong
	CueSkip
	CueTick
	CueEnd
)

var cueNames = [...]string{
	CueStart:    "start",
	CueKeypress: "keypress",
	CueCorrect:  "correct",
	CueWrong:    "wrong",
	CueSkip:     "skip",
	CueTick:     "tick",
	CueEnd:      "end",
}

// String returns the cue name.
func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue returns the cue with the given name.
func ParseCue(name string) (Cue, error) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), nil
		}
	}
	return 0, fmt.Errorf("round: unknown cue %q", name)
}

// Cues returns every cue in declaration order.
func Cues() []Cue {
	out := make([]Cue, len(cueNames))
	for i := range cueNames {
		out[i] = Cue(i)
	}
	return out
}

// Emitter receives cue requests from the controller and the clock.
type Emitter interface {
	Emit(Cue)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(Cue)

// Emit calls f(c).
func (f EmitterFunc) Emit(c Cue) {
	f(c)
}

// Discard is an Emitter that drops every cue.
var Discard Emitter = EmitterFunc(func(Cue) {})

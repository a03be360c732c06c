package round

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/censorbox/internal/words"
)

// PointsPerCorrect is added to the score for each correct classification.
const PointsPerCorrect = 10

// Action is a normalized player input. The numeric values match the pad
// numbers on the device; Skip is the fifth pad.
type Action int

const (
	ActionNone Action = iota
	ActionCategory1
	ActionCategory2
	ActionCategory3
	ActionCategory4
	ActionSkip
)

// CategoryAction returns the action that classifies a word as c.
func CategoryAction(c words.Category) Action {
	if !c.Valid() {
		return ActionNone
	}
	return Action(c)
}

// Category returns the category this action claims, or false for Skip and
// invalid actions.
func (a Action) Category() (words.Category, bool) {
	if a >= ActionCategory1 && a <= ActionCategory4 {
		return words.Category(a), true
	}
	return words.CategoryNone, false
}

// Valid reports whether a can be applied to a round.
func (a Action) Valid() bool {
	return a >= ActionCategory1 && a <= ActionSkip
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a == ActionSkip {
		return "Skip"
	}
	if c, ok := a.Category(); ok {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return "None"
}

// WordSource draws one token from the word pool.
type WordSource interface {
	Draw() string
}

// Classifier maps a token to its size category.
type Classifier interface {
	Classify(text string) words.Category
}

// Controller creates rounds and applies player input to them.
type Controller struct {
	source   WordSource
	classify Classifier
	emit     Emitter
	newID    func() string
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithIDFunc overrides how round identifiers are generated.
func WithIDFunc(fn func() string) ControllerOption {
	return func(c *Controller) {
		c.newID = fn
	}
}

// NewController creates a controller. A nil emitter discards cues.
func NewController(src WordSource, classify Classifier, emit Emitter, opts ...ControllerOption) *Controller {
	if emit == nil {
		emit = Discard
	}
	c := &Controller{
		source:   src,
		classify: classify,
		emit:     emit,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start builds a fresh round from cfg. It is the only way to obtain a
// State. Degenerate configs resolve to a terminal phase immediately:
// exhausted resources lose, an empty document wins.
func (c *Controller) Start(cfg Config) State {
	lives := max(cfg.Lives, 0)
	budget := max(cfg.TimeBudget, 0)
	count := max(cfg.WordCount, 0)

	slots := make([]Slot, count)
	for i := range slots {
		text := c.source.Draw()
		slots[i] = Slot{
			ID:       fmt.Sprintf("word-%d", i),
			Text:     text,
			Category: c.classify.Classify(text),
			Status:   StatusPending,
		}
	}

	s := State{
		ID:            c.newID(),
		Config:        cfg,
		Slots:         slots,
		Score:         0,
		Lives:         lives,
		TimeRemaining: budget,
		Phase:         PhaseActive,
	}

	c.emit.Emit(CueStart)

	switch {
	case lives == 0 || budget == 0:
		s.Phase = PhaseLost
	case count == 0:
		s.Phase = PhaseWon
	default:
		s.Slots[0].Status = StatusCurrent
		return s
	}

	c.emit.Emit(CueEnd)
	return s
}

// Apply resolves the current slot with action a and advances the round.
// Input that arrives after the round ended, or that is not a valid action,
// returns s unchanged without emitting anything.
func (c *Controller) Apply(s State, a Action) State {
	if s.Phase != PhaseActive || !a.Valid() {
		return s
	}
	if _, ok := s.Current(); !ok {
		return s
	}

	next := s.Clone()
	slot := &next.Slots[next.Cursor]

	c.emit.Emit(CueKeypress)

	if claimed, ok := a.Category(); !ok {
		slot.Status = StatusSkipped
		c.emit.Emit(CueSkip)
	} else if claimed == slot.Category {
		slot.Status = StatusCorrect
		next.Score += PointsPerCorrect
		c.emit.Emit(CueCorrect)
	} else {
		slot.Status = StatusIncorrect
		next.Lives--
		c.emit.Emit(CueWrong)
	}

	// Life loss takes precedence over running out of slots.
	if next.Lives <= 0 {
		next.Lives = 0
		next.Phase = PhaseLost
		c.emit.Emit(CueEnd)
		return next
	}

	next.Cursor++
	if next.Cursor == len(next.Slots) {
		next.Phase = PhaseWon
		c.emit.Emit(CueEnd)
		return next
	}
	next.Slots[next.Cursor].Status = StatusCurrent
	return next
}

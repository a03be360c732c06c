// Package bot implements a CPU player for headless rounds.
// Like an arcade CPU opponent it is deliberately imperfect: Accuracy is the
// chance of pressing the right pad.
package bot

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/censorbox/internal/round"
	"github.com/vovakirdan/censorbox/internal/words"
)

// Default skill settings.
const (
	DefaultAccuracy = 0.8
	DefaultSkipRate = 0.05
	DefaultDelay    = 300 * time.Millisecond
)

// Player is the round handle the bot presses pads on.
type Player interface {
	State() round.State
	Apply(a round.Action) round.State
}

// Bot chooses an action for each word it sees.
type Bot struct {
	accuracy float64
	skipRate float64
	rng      *rand.Rand
}

// New creates a bot. Accuracy and skip rate are clamped to [0, 1].
func New(accuracy, skipRate float64, rng *rand.Rand) *Bot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bot{
		accuracy: clamp01(accuracy),
		skipRate: clamp01(skipRate),
		rng:      rng,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Choose returns the action the bot takes for slot.
func (b *Bot) Choose(slot round.Slot) round.Action {
	if b.rng.Float64() < b.skipRate {
		return round.ActionSkip
	}
	if b.rng.Float64() < b.accuracy {
		return round.CategoryAction(slot.Category)
	}

	// Pick one of the three wrong pads
	wrong := words.Category(b.rng.Intn(int(words.CategoryXL)-1) + 1)
	if wrong >= slot.Category {
		wrong++
	}
	return round.CategoryAction(wrong)
}

// Play presses a pad every delay until the round is over or ctx is done.
// It returns nil when the round ends and ctx.Err() on cancellation.
func (b *Bot) Play(ctx context.Context, p Player, delay time.Duration) error {
	if delay <= 0 {
		delay = DefaultDelay
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		if p.State().Over() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		slot, ok := p.State().Current()
		if !ok {
			continue
		}
		p.Apply(b.Choose(slot))
	}
}

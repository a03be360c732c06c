package round

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/censorbox/internal/words"
)

// lockedSource makes a pool safe to share between a test and a session.
type lockedSource struct {
	mu   sync.Mutex
	pool *words.Pool
}

func (l *lockedSource) Draw() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pool.Draw()
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	pool, err := words.NewPool([]string{"KEY", "USER", "TARGET", "LIQUIDATE"}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewPool() failed: %v", err)
	}
	ctrl := NewController(&lockedSource{pool: pool}, words.DefaultClassifier(), nil)
	return NewSession(ctrl, NewClock(nil))
}

func TestSessionBeforeStart(t *testing.T) {
	sess := newTestSession(t)

	s := sess.Apply(ActionSkip)
	if s.ID != "" || len(s.Slots) != 0 {
		t.Errorf("Apply before Start returned %+v", s)
	}
	if err := sess.RunClock(context.Background(), time.Millisecond); err != nil {
		t.Errorf("RunClock before Start = %v, want nil", err)
	}
}

func TestSessionApplyAndTick(t *testing.T) {
	sess := newTestSession(t)
	sess.Start(Config{Lives: 3, TimeBudget: 60, WordCount: 5})

	s := sess.Apply(ActionSkip)
	if s.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", s.Cursor)
	}
	s = sess.Tick()
	if s.TimeRemaining != 59 {
		t.Errorf("TimeRemaining = %d, want 59", s.TimeRemaining)
	}

	// Returned states are copies.
	s.Slots[0].Status = StatusPending
	if sess.State().Slots[0].Status != StatusSkipped {
		t.Error("caller mutation leaked into session state")
	}
}

func TestSessionOnChange(t *testing.T) {
	sess := newTestSession(t)

	var mu sync.Mutex
	var phases []Phase
	sess.OnChange(func(s State) {
		mu.Lock()
		phases = append(phases, s.Phase)
		mu.Unlock()
	})

	sess.Start(Config{Lives: 1, TimeBudget: 1, WordCount: 3})
	sess.Tick()

	mu.Lock()
	defer mu.Unlock()
	if len(phases) != 2 || phases[0] != PhaseActive || phases[1] != PhaseLost {
		t.Errorf("observed phases %v, want [active lost]", phases)
	}
}

func TestRunClockStopsAtTimeout(t *testing.T) {
	sess := newTestSession(t)
	sess.Start(Config{Lives: 3, TimeBudget: 3, WordCount: 10})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := sess.RunClock(ctx, time.Millisecond); err != nil {
		t.Fatalf("RunClock() = %v, want nil", err)
	}
	s := sess.State()
	if s.Phase != PhaseLost || s.TimeRemaining != 0 {
		t.Errorf("phase=%v time=%d, want lost/0", s.Phase, s.TimeRemaining)
	}
}

func TestRunClockStopsWhenRoundEnds(t *testing.T) {
	sess := newTestSession(t)
	sess.Start(Config{Lives: 3, TimeBudget: 1000, WordCount: 2})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- sess.RunClock(ctx, time.Millisecond)
	}()

	sess.Apply(ActionSkip)
	sess.Apply(ActionSkip)

	if err := <-errc; err != nil {
		t.Fatalf("RunClock() = %v, want nil", err)
	}
	if s := sess.State(); s.Phase != PhaseWon {
		t.Errorf("Phase = %v, want won", s.Phase)
	}
}

func TestRunClockStopsOnNewRound(t *testing.T) {
	sess := newTestSession(t)
	first := sess.Start(Config{Lives: 3, TimeBudget: 1000, WordCount: 5})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- sess.RunClock(ctx, time.Millisecond)
	}()

	time.Sleep(5 * time.Millisecond)
	second := sess.Start(Config{Lives: 3, TimeBudget: 1000, WordCount: 5})
	if second.ID == first.ID {
		t.Fatal("new round reused the old ID")
	}

	if err := <-errc; err != nil {
		t.Fatalf("RunClock() = %v, want nil", err)
	}

	// The old clock must not keep ticking the new round.
	time.Sleep(5 * time.Millisecond)
	if s := sess.State(); s.TimeRemaining != 1000 {
		t.Errorf("new round was ticked by the old clock: time=%d", s.TimeRemaining)
	}
}

func TestRunClockCancelled(t *testing.T) {
	sess := newTestSession(t)
	sess.Start(Config{Lives: 3, TimeBudget: 1000, WordCount: 5})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sess.RunClock(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunClock() = %v, want context.Canceled", err)
	}
}

func TestSessionConcurrentTransitions(t *testing.T) {
	sess := newTestSession(t)
	sess.Start(Config{Lives: 50, TimeBudget: 200, WordCount: 200})

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 100; i++ {
				sess.Apply(Action(1 + rng.Intn(5)))
			}
		}(int64(w))
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			sess.Tick()
		}
	}()
	wg.Wait()

	checkInvariants(t, sess.State())
}

package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/censorbox/internal/bot"
	"github.com/vovakirdan/censorbox/internal/config"
	"github.com/vovakirdan/censorbox/internal/device"
	"github.com/vovakirdan/censorbox/internal/round"
)

var (
	flagBotAccuracy float64
	flagBotSkipRate float64
	flagBotSpeed    time.Duration
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Run a headless round with a bot player",
	Long: `Play one round without a screen. A CPU player presses pads at a
fixed pace while the real one-second clock counts down, and every cue is
logged. Useful for checking difficulty presets.

Examples:
  censorbox autoplay
  censorbox autoplay --difficulty hard --accuracy 0.95 --speed 150ms
  censorbox autoplay --log-level debug --seed 42`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (default from config)")
	autoplayCmd.Flags().Float64Var(&flagBotAccuracy, "accuracy", bot.DefaultAccuracy, "Chance the bot picks the right pad (0-1)")
	autoplayCmd.Flags().Float64Var(&flagBotSkipRate, "skip-rate", bot.DefaultSkipRate, "Chance the bot skips a word (0-1)")
	autoplayCmd.Flags().DurationVar(&flagBotSpeed, "speed", bot.DefaultDelay, "Delay between bot presses")
}

func runAutoplay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	difficulty, err := cfg.Preset(flagDifficulty)
	if err != nil {
		fail("%v (presets: %v)", err, cfg.PresetNames())
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pool, err := cfg.Pool(seed)
	if err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cues, _, err := newCues(cfg, store, logger, os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	ctrl := round.NewController(pool, cfg.Classifier, cues)
	session := round.NewSession(ctrl, round.NewClock(cues))
	session.OnChange(func(s round.State) {
		kv := []any{"progress", device.Progress(s), "score", s.Score, "lives", s.Lives, "time_left", s.TimeRemaining}
		if slot, ok := s.Current(); ok {
			kv = append(kv, "word", slot.Text, "size", slot.Category)
		}
		logger.Debug("state", kv...)
	})

	start := session.Start(difficulty.RoundConfig())
	logger.Info("round started",
		"round", start.ID,
		"difficulty", difficulty.Name,
		"seed", seed,
		"accuracy", flagBotAccuracy,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The clock and the bot run side by side; both stop when the round ends
	player := bot.New(flagBotAccuracy, flagBotSkipRate, rand.New(rand.NewSource(seed)))
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return session.RunClock(gctx, round.TickInterval)
	})
	g.Go(func() error {
		return player.Play(gctx, session, flagBotSpeed)
	})

	if err := g.Wait(); err != nil {
		logger.Warn("autoplay interrupted", "error", err)
	}

	final := session.State()
	t := final.Tally()
	logger.Info("round over",
		"round", final.ID,
		"phase", final.Phase,
		"score", final.Score,
		"lives", final.Lives,
		"time_left", final.TimeRemaining,
	)

	fmt.Println(device.Headline(final))
	fmt.Printf("  Final score: %d\n", final.Score)
	fmt.Printf("  Progress:    %s\n", device.Progress(final))
	fmt.Printf("  Correct %d, incorrect %d, skipped %d\n", t.Correct, t.Incorrect, t.Skipped)
	fmt.Printf("  Lives left %d, time left %ds\n", final.Lives, final.TimeRemaining)
}

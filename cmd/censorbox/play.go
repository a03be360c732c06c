package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/censorbox/internal/config"
	"github.com/vovakirdan/censorbox/internal/core"
	"github.com/vovakirdan/censorbox/internal/platform/tui"
)

var (
	flagDifficulty string
	flagNoBoot     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Boot the device and play",
	Long: `Boot the CENSOR BOX and classify words until the document is
processed or compromised.

Controls:
  1/Q  2/W  3/S  4/A  - Size pads S, M, L, XL
  Space              - Skip the current word
  M                  - Mute/unmute
  R/Enter            - New document (after game over)
  Esc                - Back to difficulty menu
  Ctrl+C             - Quit

Without --difficulty a menu lists the presets; the last one played is
preselected. With --difficulty the round starts straight away and Esc
quits.

Examples:
  censorbox play
  censorbox play --difficulty hard
  censorbox play --no-boot --seed 42
  censorbox play --config ./my-censorbox.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (see 'censorbox presets')")
	playCmd.Flags().BoolVar(&flagNoBoot, "no-boot", false, "Skip the login sequence")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	// Validate the difficulty before taking over the screen
	var direct *config.Difficulty
	if flagDifficulty != "" {
		d, presetErr := cfg.Preset(flagDifficulty)
		if presetErr != nil {
			fail("%v (presets: %v)", presetErr, cfg.PresetNames())
		}
		direct = &d
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cues, mute, err := newCues(cfg, store, logger, os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width = w
		height = h
	}

	env := &tui.Env{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Store:  store,
		Logger: logger,
		Cues:   cues,
		Mute:   mute,
	}

	if !flagNoBoot {
		quit, bootErr := tui.RunBoot(width, height)
		if bootErr != nil {
			fail("%v", bootErr)
		}
		if quit {
			return
		}
	}

	if direct != nil {
		if store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			store.SetLastDifficulty(direct.Name)
		}
		if _, runErr := tui.Run(env, *direct); runErr != nil {
			fail("running game: %v", runErr)
		}
		return
	}

	// Menu loop
	for {
		menuResult, menuErr := tui.RunMenu(env)
		if menuErr != nil {
			fail("%v", menuErr)
		}

		// Update config with any size changes
		env.Runtime = menuResult.Runtime

		if menuResult.Quit {
			return
		}

		result, runErr := tui.Run(env, menuResult.Difficulty)
		if runErr != nil {
			fail("running game: %v", runErr)
		}
		logger.Info("device closed", "difficulty", menuResult.Difficulty.Name, "rounds", result.Rounds)

		if !result.Back {
			return
		}

		// Loop back to menu
	}
}

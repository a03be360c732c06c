// censorbox is the CENSOR BOX word-size classification arcade for the terminal.
//
// Usage:
//
//	censorbox play              - Boot the device and pick a difficulty
//	censorbox presets           - List difficulty presets
//	censorbox autoplay          - Run a headless round with a bot player
//	censorbox mute [on|off]     - Show or set the stored mute preference
//
// Global flags:
//
//	--config <path>     - Config YAML (default: search order)
//	--db <path>         - Preferences database (default: ~/.censorbox/prefs.db)
//	--seed <value>      - RNG seed for the word pool
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/censorbox/internal/audio"
	"github.com/vovakirdan/censorbox/internal/config"
	"github.com/vovakirdan/censorbox/internal/round"
	"github.com/vovakirdan/censorbox/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "censorbox",
	Short: "CENSOR BOX - classify classified words before time runs out",
	Long: `CENSOR BOX is a timed word-matching arcade game in your terminal.

Words scroll across the device screen. Classify each one by length
on the four size pads (S, M, L, XL) or skip it. Correct calls are
redacted and score points; wrong calls cost a life.

Available commands:
  play      - Boot the device and pick a difficulty
  presets   - List difficulty presets
  autoplay  - Run a headless round with a bot player
  mute      - Show or set the stored mute preference

Examples:
  censorbox play
  censorbox play --difficulty hard
  censorbox autoplay --accuracy 0.9
  censorbox mute on`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.censorbox/prefs.db", "Path to preferences database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(muteCmd)
}

// newLogger creates the application logger. When --log-file is set logs go
// there; otherwise they go to fallback. The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	cleanup := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "censorbox",
		Level:           level,
	})
	return logger, cleanup, nil
}

// openStore opens the preferences database. Failure is a warning: the game
// still works without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open preferences database", "error", err)
		return nil
	}
	return store
}

// newCues builds the cue sink: the terminal bell behind a mute switch, plus
// a debug log of every cue. The stored mute preference wins over the config.
func newCues(cfg config.Config, store *storage.Store, logger *log.Logger, bell io.Writer) (round.Emitter, *audio.Switch, error) {
	bellCues, err := cfg.BellCues()
	if err != nil {
		return nil, nil, err
	}

	muted := cfg.Audio.Muted
	if store != nil {
		stored, ok, err := store.Muted()
		switch {
		case err != nil:
			logger.Warn("could not read mute preference", "error", err)
		case ok:
			muted = stored
		}
	}

	mute := audio.NewSwitch(audio.NewBell(bell, bellCues...), muted)
	return audio.Fanout{mute, audio.NewLogSink(logger)}, mute, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

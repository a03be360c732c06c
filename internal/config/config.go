// Package config provides YAML-based game configuration: the difficulty
// table, the word pool, classifier thresholds and display/audio options.
package config

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/censorbox/internal/round"
	"github.com/vovakirdan/censorbox/internal/words"
)

// ErrUnknownDifficulty is returned when a preset name is not in the table.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Config is the complete game configuration.
type Config struct {
	Difficulties      []Difficulty     `yaml:"difficulties"`
	DefaultDifficulty string           `yaml:"default_difficulty"`
	Classifier        words.Classifier `yaml:"classifier"`
	Display           Display          `yaml:"display"`
	Audio             Audio            `yaml:"audio"`
	Words             []string         `yaml:"words"`
}

// Difficulty is one named row of the difficulty table.
type Difficulty struct {
	Name       string `yaml:"name"`
	Lives      int    `yaml:"lives"`
	TimeBudget int    `yaml:"time_budget"` // Seconds
	WordCount  int    `yaml:"word_count"`
}

// RoundConfig converts the preset into the engine's round configuration.
func (d Difficulty) RoundConfig() round.Config {
	return round.Config{
		Lives:      d.Lives,
		TimeBudget: d.TimeBudget,
		WordCount:  d.WordCount,
	}
}

// Display holds presentation options.
type Display struct {
	Clearance string `yaml:"clearance"` // Header text after "CLEARANCE:"
	SizeHint  bool   `yaml:"size_hint"` // Show the current word's size in the footer
}

// Audio holds cue sink options.
type Audio struct {
	Muted    bool     `yaml:"muted"`     // Initial mute state when no preference is stored
	BellCues []string `yaml:"bell_cues"` // Cues that ring the terminal bell
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return errors.New("config: no difficulties defined")
	}

	seen := make(map[string]bool, len(c.Difficulties))
	for i, d := range c.Difficulties {
		if d.Name == "" {
			return fmt.Errorf("config: difficulty #%d has no name", i+1)
		}
		if seen[d.Name] {
			return fmt.Errorf("config: duplicate difficulty %q", d.Name)
		}
		seen[d.Name] = true
		if err := d.RoundConfig().Validate(); err != nil {
			return fmt.Errorf("config: difficulty %q: %w", d.Name, err)
		}
	}

	if c.DefaultDifficulty != "" && !seen[c.DefaultDifficulty] {
		return fmt.Errorf("%w: default %q", ErrUnknownDifficulty, c.DefaultDifficulty)
	}

	if err := c.Classifier.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if _, err := c.BellCues(); err != nil {
		return err
	}

	if _, err := words.NewPool(c.Words, nil); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Preset returns the difficulty with the given name. An empty name selects
// the default difficulty, or the first row if none is set.
func (c Config) Preset(name string) (Difficulty, error) {
	if name == "" {
		name = c.DefaultDifficulty
	}
	if name == "" && len(c.Difficulties) > 0 {
		return c.Difficulties[0], nil
	}
	for _, d := range c.Difficulties {
		if d.Name == name {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// PresetNames returns the difficulty names in table order.
func (c Config) PresetNames() []string {
	names := make([]string, len(c.Difficulties))
	for i, d := range c.Difficulties {
		names[i] = d.Name
	}
	return names
}

// BellCues parses the configured bell cue names.
func (c Config) BellCues() ([]round.Cue, error) {
	cues := make([]round.Cue, 0, len(c.Audio.BellCues))
	for _, name := range c.Audio.BellCues {
		cue, err := round.ParseCue(name)
		if err != nil {
			return nil, fmt.Errorf("config: audio.bell_cues: %w", err)
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

// Pool builds the word pool drawing from a generator seeded with seed.
func (c Config) Pool(seed int64) (*words.Pool, error) {
	pool, err := words.NewPool(c.Words, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return pool, nil
}

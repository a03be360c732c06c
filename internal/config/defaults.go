package config

import (
	_ "embed"

	"github.com/vovakirdan/censorbox/internal/words"
)

//go:embed defaults/censorbox.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Difficulties: []Difficulty{
			{Name: "easy", Lives: 5, TimeBudget: 90, WordCount: 30},
			{Name: "normal", Lives: 3, TimeBudget: 60, WordCount: 40},
			{Name: "hard", Lives: 1, TimeBudget: 45, WordCount: 50},
		},
		DefaultDifficulty: "normal",
		Classifier:        words.DefaultClassifier(),
		Display: Display{
			Clearance: "LEVEL 5",
		},
		Audio: Audio{
			BellCues: []string{"wrong", "end"},
		},
		Words: []string{
			"PROTOCOL", "SUBJECT", "ALPHA", "OMEGA", "TARGET", "ASSET", "LIQUIDATE",
			"CLASSIFIED", "REDACTED", "CLEARANCE", "VERIFIED", "UNKNOWN", "LOCATION",
			"LOG", "ENTRY", "USER", "ADMIN", "SYSTEM", "AGENT", "SIGNAL", "KEY",
			"FILE", "DATA", "ACCESS", "DENIED", "THE", "AND", "IS", "OF", "TO",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

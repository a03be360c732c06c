package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local
// config directories.
const FileName = "censorbox.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.censorbox/config.yaml -> ./configs/censorbox.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Broken files
// further down the search order are skipped. Whatever is loaded must pass
// Validate.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, err
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses one YAML file. Fields missing from the file
// keep the embedded defaults.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over a copy of the defaults.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = DefaultConfig()
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns ~/.censorbox/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".censorbox", "config.yaml")
}

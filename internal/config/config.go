package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Buffer BufferConfig `json:"buffer" yaml:"buffer"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

// BufferConfig captures the event buffer budgets and threshold.
type BufferConfig struct {
	MaxEntries   int    `json:"maxEntries" yaml:"maxEntries"`
	MaxSizeBytes int64  `json:"maxSizeBytes" yaml:"maxSizeBytes"`
	MinSeverity  string `json:"minSeverity" yaml:"minSeverity"`
}

// LogConfig configures the side diagnostic logger.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "json" or "text"
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Buffer: BufferConfig{
			MaxEntries:   1000,
			MaxSizeBytes: 1 << 20,
			MinSeverity:  "debug",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

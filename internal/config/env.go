package config

import (
	"os"
	"strconv"
)

// FromEnv overlays PULSE_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("PULSE_MAX_ENTRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Buffer.MaxEntries = n
		}
	}
	if v := os.Getenv("PULSE_MAX_SIZE_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Buffer.MaxSizeBytes = n
		}
	}
	if v := os.Getenv("PULSE_MIN_SEVERITY"); v != "" {
		cfg.Buffer.MinSeverity = v
	}
	if v := os.Getenv("PULSE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PULSE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Package config provides YAML-based configuration loading for the rubik CLI.
package config

import (
	"time"

	"github.com/charmbracelet/log"
)

// Config contains all configuration for the rubik CLI.
type Config struct {
	DBPath   string         `yaml:"db_path"`
	Scramble ScrambleConfig `yaml:"scramble"`
	Replay   ReplayConfig   `yaml:"replay"`
	Log      LogConfig      `yaml:"log"`
}

// ScrambleConfig controls scramble generation.
type ScrambleConfig struct {
	Length int    `yaml:"length"`
	Seed   uint64 `yaml:"seed"` // 0 = random seed per run
}

// ReplayConfig controls animated batch playback.
type ReplayConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// Interval returns the configured pause between replayed moves.
func (r ReplayConfig) Interval() time.Duration {
	return time.Duration(r.IntervalMs) * time.Millisecond
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ParsedLevel returns the log level, defaulting to info for unknown values.
func (l LogConfig) ParsedLevel() log.Level {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Scramble: ScrambleConfig{Length: 25},
		Replay:   ReplayConfig{IntervalMs: 250},
		Log:      LogConfig{Level: "info"},
	}
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Scramble.Length <= 0 {
		c.Scramble.Length = def.Scramble.Length
	}
	if c.Replay.IntervalMs < 0 {
		c.Replay.IntervalMs = 0
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

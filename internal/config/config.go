// Package config provides YAML-based rule configuration and difficulty
// presets for the game.
package config

import "fmt"

// GameConfig contains all tunable rules of the game.
type GameConfig struct {
	Spawn  SpawnConfig `yaml:"spawn"`
	Timers TimerConfig `yaml:"timers"`
	Rules  RulesConfig `yaml:"rules"`
}

// SpawnConfig controls tile generation.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // 0.0-1.0
}

// TimerConfig defines the countdowns of the timer modes.
type TimerConfig struct {
	TimedSeconds    int `yaml:"timed_seconds"`
	HardcoreSeconds int `yaml:"hardcore_seconds"`
}

// RulesConfig holds behaviour switches.
type RulesConfig struct {
	DetectLoss            bool `yaml:"detect_loss"`
	HardcoreNoticeSeconds int  `yaml:"hardcore_notice_seconds"`
}

// Validate checks that all values are usable.
func (c GameConfig) Validate() error {
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("config: spawn.four_probability must be in [0, 1], got %v", c.Spawn.FourProbability)
	}
	if c.Timers.TimedSeconds <= 0 {
		return fmt.Errorf("config: timers.timed_seconds must be positive, got %d", c.Timers.TimedSeconds)
	}
	if c.Timers.HardcoreSeconds <= 0 {
		return fmt.Errorf("config: timers.hardcore_seconds must be positive, got %d", c.Timers.HardcoreSeconds)
	}
	if c.Rules.HardcoreNoticeSeconds < 0 {
		return fmt.Errorf("config: rules.hardcore_notice_seconds must not be negative, got %d", c.Rules.HardcoreNoticeSeconds)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.FourProbability = 0.05
	case DifficultyHard:
		cfg.Spawn.FourProbability = 0.25
		cfg.Timers.TimedSeconds = 45
		cfg.Timers.HardcoreSeconds = 7
	}
}

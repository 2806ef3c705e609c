package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in rules: 10% fours, 60 s timed, 10 s hardcore,
// no loss detection.
func Default() GameConfig {
	return GameConfig{
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		Timers: TimerConfig{
			TimedSeconds:    60,
			HardcoreSeconds: 10,
		},
		Rules: RulesConfig{
			DetectLoss:            false,
			HardcoreNoticeSeconds: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

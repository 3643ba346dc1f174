package config

import (
	_ "embed"
)

//go:embed defaults/numguess.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Range: RangeConfig{
			Min: 1,
			Max: 100,
		},
		Difficulties: map[DifficultyKey]DifficultySpec{
			DifficultyUnlimited: {Label: "Unlimited", MaxAttempts: 0},
			DifficultyEasy:      {Label: "Easy", MaxAttempts: 10},
			DifficultyMedium:    {Label: "Medium", MaxAttempts: 5},
			DifficultyHard:      {Label: "Hard", MaxAttempts: 3},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}

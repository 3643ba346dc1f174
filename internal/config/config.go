// Package config provides YAML-based game configuration loading for the
// number guessing game: the secret number range and the attempt budget of
// each difficulty level.
package config

import "fmt"

// GameConfig contains all configuration for a guessing session.
type GameConfig struct {
	Range        RangeConfig                      `yaml:"range"`
	Difficulties map[DifficultyKey]DifficultySpec `yaml:"difficulties"`
}

// RangeConfig defines the inclusive bounds of the secret number.
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DifficultySpec describes one difficulty level.
type DifficultySpec struct {
	Label       string `yaml:"label"`
	MaxAttempts uint   `yaml:"max_attempts"` // 0 = unlimited
}

// Validate checks the config and fills in whatever the file left out from
// the built-in defaults: missing difficulties, labels and attempt budgets.
// Only unlimited may be without a budget.
func (c *GameConfig) Validate() error {
	if c.Range.Min >= c.Range.Max {
		return fmt.Errorf("config: range min %d must be below max %d", c.Range.Min, c.Range.Max)
	}

	defaults := DefaultConfig().Difficulties
	for key := range c.Difficulties {
		if _, ok := defaults[key]; !ok {
			return fmt.Errorf("config: unknown difficulty %q", key)
		}
	}

	if c.Difficulties == nil {
		c.Difficulties = make(map[DifficultyKey]DifficultySpec, len(defaults))
	}
	for key, def := range defaults {
		spec, ok := c.Difficulties[key]
		if !ok {
			c.Difficulties[key] = def
			continue
		}
		if key == DifficultyUnlimited && spec.MaxAttempts != 0 {
			return fmt.Errorf("config: difficulty %q cannot have max_attempts", key)
		}
		if spec.Label == "" {
			spec.Label = def.Label
		}
		if spec.MaxAttempts == 0 {
			spec.MaxAttempts = def.MaxAttempts
		}
		c.Difficulties[key] = spec
	}
	return nil
}

// Difficulty returns the spec for key. Validated configs always contain
// every key returned by Keys.
func (c GameConfig) Difficulty(key DifficultyKey) DifficultySpec {
	return c.Difficulties[key]
}

package config

import "strconv"

// DifficultyKey names a difficulty level in the config file.
type DifficultyKey string

const (
	DifficultyUnlimited DifficultyKey = "unlimited"
	DifficultyEasy      DifficultyKey = "easy"
	DifficultyMedium    DifficultyKey = "medium"
	DifficultyHard      DifficultyKey = "hard"
)

// Keys returns every difficulty key in menu order.
func Keys() []DifficultyKey {
	return []DifficultyKey{
		DifficultyUnlimited,
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
	}
}

// Limit returns the attempt budget of the spec, or false when unlimited.
func (s DifficultySpec) Limit() (uint, bool) {
	if s.MaxAttempts == 0 {
		return 0, false
	}
	return s.MaxAttempts, true
}

// Describe returns the short budget text shown next to a menu entry.
func (s DifficultySpec) Describe() string {
	limit, ok := s.Limit()
	if !ok {
		return "unlimited"
	}
	if limit == 1 {
		return "1 chance"
	}
	return strconv.FormatUint(uint64(limit), 10) + " chances"
}

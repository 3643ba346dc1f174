package guess

import "github.com/vovakirdan/numguess/internal/config"

// Difficulty selects the attempt budget of a round.
type Difficulty int

const (
	DifficultyUnlimited Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists every level in menu order; the index is the menu choice.
var Difficulties = []Difficulty{
	DifficultyUnlimited,
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

// DifficultyFromChoice maps a menu number to a difficulty.
func DifficultyFromChoice(choice int) (Difficulty, bool) {
	if choice < 0 || choice >= len(Difficulties) {
		return DifficultyMedium, false
	}
	return Difficulties[choice], true
}

// Key returns the config key of the difficulty.
func (d Difficulty) Key() config.DifficultyKey {
	switch d {
	case DifficultyUnlimited:
		return config.DifficultyUnlimited
	case DifficultyEasy:
		return config.DifficultyEasy
	case DifficultyHard:
		return config.DifficultyHard
	default:
		return config.DifficultyMedium
	}
}

// String returns the config key, for logging.
func (d Difficulty) String() string {
	return string(d.Key())
}

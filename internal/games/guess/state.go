// Package guess implements the number guessing game: the per-session state
// and the controller that drives it over a line channel.
package guess

import (
	"slices"
	"time"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/core"
)

// Outcome is the result of comparing a guess with the secret number.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeTooHigh         // guess > secret
	OutcomeTooLow          // guess < secret
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeTooHigh:
		return "too_high"
	case OutcomeTooLow:
		return "too_low"
	default:
		return "unknown"
	}
}

// State holds everything that changes over a session.
// It is owned by a single Controller and is not safe for concurrent use.
type State struct {
	rng core.Rand
	cfg config.GameConfig

	difficulty Difficulty
	secret     int
	guesses    uint
	scores     []uint // Winning attempt counts, append-only
	started    time.Time
}

// NewState creates a session at Medium difficulty with a fresh secret.
func NewState(rng core.Rand, cfg config.GameConfig) *State {
	s := &State{
		rng:        rng,
		cfg:        cfg,
		difficulty: DifficultyMedium,
	}
	s.GenerateNumber()
	return s
}

// GenerateNumber draws a new secret number from the configured range.
func (s *State) GenerateNumber() {
	s.secret = s.rng.IntRange(s.cfg.Range.Min, s.cfg.Range.Max)
}

// SetDifficulty replaces the current difficulty.
func (s *State) SetDifficulty(d Difficulty) {
	s.difficulty = d
}

// Difficulty returns the current difficulty.
func (s *State) Difficulty() Difficulty {
	return s.difficulty
}

// Spec returns the config entry of the current difficulty.
func (s *State) Spec() config.DifficultySpec {
	return s.cfg.Difficulty(s.difficulty.Key())
}

// MaxAttempts returns the attempt budget, or false for unlimited play.
func (s *State) MaxAttempts() (uint, bool) {
	return s.Spec().Limit()
}

// IsOver reports whether the attempt budget is used up.
func (s *State) IsOver() bool {
	limit, ok := s.MaxAttempts()
	return ok && s.guesses >= limit
}

// Reset starts a new round at the same difficulty. Score history is kept.
func (s *State) Reset() {
	s.guesses = 0
	s.GenerateNumber()
}

// StartRound records when the current round began.
func (s *State) StartRound(now time.Time) {
	s.started = now
}

// Started returns the start time of the current round.
func (s *State) Started() time.Time {
	return s.started
}

// RecordGuess counts an attempt and compares it with the secret.
func (s *State) RecordGuess(guess int) Outcome {
	s.guesses++
	switch {
	case guess > s.secret:
		return OutcomeTooHigh
	case guess < s.secret:
		return OutcomeTooLow
	default:
		return OutcomeCorrect
	}
}

// RecordWin appends the current attempt count to the score history.
func (s *State) RecordWin() {
	s.scores = append(s.scores, s.guesses)
}

// GuessCount returns the attempts made in the current round.
func (s *State) GuessCount() uint {
	return s.guesses
}

// Secret returns the current secret number.
func (s *State) Secret() int {
	return s.secret
}

// Range returns the inclusive bounds of the secret number.
func (s *State) Range() (int, int) {
	return s.cfg.Range.Min, s.cfg.Range.Max
}

// Scores returns a copy of the score history.
func (s *State) Scores() []uint {
	return slices.Clone(s.scores)
}

// BestScore returns the fewest attempts over all won rounds.
func (s *State) BestScore() (uint, bool) {
	if len(s.scores) == 0 {
		return 0, false
	}
	return slices.Min(s.scores), true
}

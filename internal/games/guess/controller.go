package guess

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/numguess/internal/core"
)

// QuitSentinel ends the game from any prompt.
const QuitSentinel = "q"

// Controller runs the session loop: pick a difficulty, play a round, ask
// whether to go again.
type Controller struct {
	ch     core.LineChannel
	state  *State
	clock  core.Clock
	logger *log.Logger
}

// NewController creates a controller that owns state for the whole session.
// A nil logger discards log output.
func NewController(ch core.LineChannel, state *State, clock core.Clock, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		ch:     ch,
		state:  state,
		clock:  clock,
		logger: logger.With("session", uuid.NewString()),
	}
}

// State returns the session state driven by the controller.
func (c *Controller) State() *State {
	return c.state
}

// Run plays rounds until the player declines to continue, which returns nil.
// Quitting early returns ErrEarlyQuit; any other error is fatal.
func (c *Controller) Run() error {
	if err := c.welcome(); err != nil {
		return err
	}

	for {
		difficulty, err := c.selectDifficulty()
		if err != nil {
			return err
		}
		c.state.SetDifficulty(difficulty)

		spec := c.state.Spec()
		if err := c.say(core.TonePlain, fmt.Sprintf("Great! You have selected the %s difficulty level.", spec.Label)); err != nil {
			return err
		}
		if err := c.say(core.TonePlain, "Let's start the game!\n"); err != nil {
			return err
		}

		if err := c.playRound(); err != nil {
			return err
		}

		again, err := c.askContinue()
		if err != nil {
			return err
		}
		if !again {
			c.logger.Info("session finished", "rounds_won", len(c.state.scores))
			return c.say(core.TonePlain, "Thanks for playing!")
		}

		c.state.Reset()
		if best, ok := c.state.BestScore(); ok {
			if err := c.say(core.TonePlain, fmt.Sprintf("Your current best score is: %d", best)); err != nil {
				return err
			}
		}
	}
}

func (c *Controller) welcome() error {
	low, high := c.state.Range()
	return c.say(core.ToneBanner, fmt.Sprintf(
		"Welcome to the Number Guessing Game!\nI'm thinking of a number between %d and %d.\nYou have a few chances to guess the correct number.\n",
		low, high,
	))
}

// selectDifficulty prompts for a menu choice. Malformed input is fatal;
// numbers outside the menu fall back to Medium without asking again.
func (c *Controller) selectDifficulty() (Difficulty, error) {
	var menu strings.Builder
	menu.WriteString("\nPlease select the difficulty level:")
	for i, d := range Difficulties {
		spec := c.state.cfg.Difficulty(d.Key())
		fmt.Fprintf(&menu, "\n%d. %s (%s)", i, spec.Label, spec.Describe())
	}
	if err := c.say(core.TonePrompt, menu.String()); err != nil {
		return DifficultyMedium, err
	}
	if err := c.say(core.TonePrompt, "Enter your choice or q/Ctrl+C to quit at any point: "); err != nil {
		return DifficultyMedium, err
	}

	line, err := c.read()
	if err != nil {
		return DifficultyMedium, err
	}
	if line == QuitSentinel {
		return DifficultyMedium, ErrEarlyQuit
	}

	choice, err := parseNumber(line)
	if err != nil {
		return DifficultyMedium, &ParseError{Input: line, Err: err}
	}

	difficulty, ok := DifficultyFromChoice(choice)
	if !ok {
		c.logger.Warn("invalid difficulty choice", "choice", choice, "fallback", difficulty)
		if err := c.say(core.ToneWarning, "Invalid difficulty, defaulting to Medium."); err != nil {
			return difficulty, err
		}
	}
	return difficulty, nil
}

// playRound runs the guess loop until the round is won or the attempt
// budget is used up.
func (c *Controller) playRound() error {
	c.state.StartRound(c.clock.Now())
	c.logger.Debug("round started", "difficulty", c.state.Difficulty())

	for {
		if err := c.say(core.TonePrompt, "Enter your guess: "); err != nil {
			return err
		}
		line, err := c.read()
		if err != nil {
			return err
		}
		if line == QuitSentinel {
			c.logger.Debug("round abandoned", "guesses", c.state.GuessCount())
			return ErrEarlyQuit
		}

		guess, err := parseNumber(line)
		if err != nil {
			if err := c.say(core.ToneWarning, "Invalid number, please try again."); err != nil {
				return err
			}
			continue
		}

		outcome := c.state.RecordGuess(guess)
		c.logger.Debug("guess", "value", guess, "attempt", c.state.GuessCount(), "outcome", outcome)

		switch outcome {
		case OutcomeCorrect:
			return c.win()
		case OutcomeTooHigh:
			err = c.say(core.ToneHint, fmt.Sprintf("Incorrect! The number is less than %d.", guess))
		case OutcomeTooLow:
			err = c.say(core.ToneHint, fmt.Sprintf("Incorrect! The number is greater than %d.", guess))
		}
		if err != nil {
			return err
		}

		if c.state.IsOver() {
			return c.lose()
		}
	}
}

func (c *Controller) win() error {
	attempts := c.state.GuessCount()
	if err := c.say(core.ToneSuccess, fmt.Sprintf("Congratulations! You guessed the correct number in %d attempts.", attempts)); err != nil {
		return err
	}

	elapsed, err := c.clock.ElapsedSeconds(c.state.Started())
	if err != nil {
		return &TimingError{Err: err}
	}
	if err := c.say(core.ToneSuccess, fmt.Sprintf("Additionally, it took you %d seconds to guess correctly.", elapsed)); err != nil {
		return err
	}

	c.state.RecordWin()
	c.logger.Info("round won", "difficulty", c.state.Difficulty(), "attempts", attempts, "seconds", elapsed)
	return nil
}

func (c *Controller) lose() error {
	limit, _ := c.state.MaxAttempts()
	c.logger.Info("round lost", "difficulty", c.state.Difficulty(), "limit", limit)

	if err := c.say(core.ToneFailure, fmt.Sprintf("You exceeded the maximum number of attempts (%d) for the selected difficulty level.", limit)); err != nil {
		return err
	}
	return c.say(core.ToneFailure, fmt.Sprintf("The correct number was: %d.", c.state.Secret()))
}

// askContinue re-prompts until it gets a yes or no answer.
func (c *Controller) askContinue() (bool, error) {
	if err := c.say(core.TonePrompt, "Do you want to keep playing? [y/n]"); err != nil {
		return false, err
	}

	for {
		line, err := c.read()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no", QuitSentinel:
			return false, nil
		}
		if err := c.say(core.ToneWarning, "Invalid option. Please try again (y/n)."); err != nil {
			return false, err
		}
	}
}

// parseNumber reads a base-10 integer that fits in 32 bits.
func parseNumber(line string) (int, error) {
	n, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// read returns the next trimmed line.
func (c *Controller) read() (string, error) {
	line, err := c.ch.ReadLine()
	if err != nil {
		return "", &IOError{Op: "read", Err: err}
	}
	return strings.TrimSpace(line), nil
}

func (c *Controller) say(tone core.Tone, text string) error {
	if err := core.Write(c.ch, tone, text); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

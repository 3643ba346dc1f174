package guess

import (
	"errors"
	"fmt"
)

// ErrEarlyQuit is returned when the player types the quit sentinel.
// It is an expected way to leave the game, not a failure.
var ErrEarlyQuit = errors.New("Quitting game...") //nolint:staticcheck // shown to the player verbatim

// Kind classifies errors returned by Controller.Run.
type Kind int

const (
	KindNone Kind = iota
	KindEarlyQuit
	KindParse
	KindIO
	KindTiming
	KindUnknown
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindEarlyQuit:
		return "EarlyQuit"
	case KindParse:
		return "Parse"
	case KindIO:
		return "IO"
	case KindTiming:
		return "Timing"
	default:
		return "Unknown"
	}
}

// ParseError reports input that could not be read as a number.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid choice %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failure of the line channel.
type IOError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// TimingError reports an invalid interval from the clock.
type TimingError struct {
	Err error
}

func (e *TimingError) Error() string {
	return fmt.Sprintf("measure round time: %v", e.Err)
}

func (e *TimingError) Unwrap() error { return e.Err }

// KindOf classifies err.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrEarlyQuit) {
		return KindEarlyQuit
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return KindParse
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return KindIO
	}
	var timingErr *TimingError
	if errors.As(err, &timingErr) {
		return KindTiming
	}
	return KindUnknown
}

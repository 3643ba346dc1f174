package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrClockWentBackwards is returned when an interval would be negative.
var ErrClockWentBackwards = errors.New("clock went backwards")

// Clock is the time source used to measure how long a round took.
type Clock interface {
	Now() time.Time
	ElapsedSeconds(from time.Time) (uint64, error)
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ElapsedSeconds returns whole seconds since from, rounded down.
func (c SystemClock) ElapsedSeconds(from time.Time) (uint64, error) {
	return ElapsedSeconds(from, c.Now())
}

// ElapsedSeconds returns whole seconds between from and to, rounded down.
// It fails with ErrClockWentBackwards if to is before from.
func ElapsedSeconds(from, to time.Time) (uint64, error) {
	d := to.Sub(from)
	if d < 0 {
		return 0, fmt.Errorf("%w by %s", ErrClockWentBackwards, -d)
	}
	return uint64(d / time.Second), nil
}

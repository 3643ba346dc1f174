package guess

import (
	"io"
	"strings"
	"time"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/core"
)

// scriptRand returns the queued values in order, repeating the last one.
type scriptRand struct {
	values []int
	calls  int
}

func (r *scriptRand) IntRange(low, high int) int {
	if len(r.values) == 0 {
		return low
	}
	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i]
}

// fakeClock reports a fixed time; elapsed is measured against now.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) ElapsedSeconds(from time.Time) (uint64, error) {
	return core.ElapsedSeconds(from, c.now)
}

// scriptChannel feeds queued input lines and records every output line.
type scriptChannel struct {
	input  []string
	output []string
	tones  []core.Tone
}

func (s *scriptChannel) WriteLine(text string) error {
	s.output = append(s.output, text)
	return nil
}

func (s *scriptChannel) WriteTone(tone core.Tone, text string) error {
	s.tones = append(s.tones, tone)
	return s.WriteLine(text)
}

func (s *scriptChannel) ReadLine() (string, error) {
	if len(s.input) == 0 {
		return "", io.EOF
	}
	line := s.input[0]
	s.input = s.input[1:]
	return line, nil
}

func (s *scriptChannel) transcript() string {
	return strings.Join(s.output, "\n")
}

func (s *scriptChannel) count(substr string) int {
	n := 0
	for _, line := range s.output {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

// newTestController wires a controller with the default config and a
// scripted secret sequence.
func newTestController(secrets []int, input ...string) (*Controller, *scriptChannel, *fakeClock) {
	ch := &scriptChannel{input: input}
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	state := NewState(&scriptRand{values: secrets}, config.DefaultConfig())
	return NewController(ch, state, clock, nil), ch, clock
}

package core

import (
	"errors"
	"testing"
	"time"
)

func TestElapsedSeconds(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		after time.Duration
		want  uint64
	}{
		{"same instant", 0, 0},
		{"sub-second rounds down", 999 * time.Millisecond, 0},
		{"exact seconds", 7 * time.Second, 7},
		{"fraction rounds down", 12*time.Second + 900*time.Millisecond, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ElapsedSeconds(start, start.Add(tt.after))
			if err != nil {
				t.Fatalf("ElapsedSeconds() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ElapsedSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestElapsedSecondsBackwards(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	_, err := ElapsedSeconds(start, start.Add(-time.Second))
	if !errors.Is(err, ErrClockWentBackwards) {
		t.Errorf("expected ErrClockWentBackwards, got %v", err)
	}
}

func TestSystemClock(t *testing.T) {
	var c SystemClock
	start := c.Now().Add(-2 * time.Second)

	got, err := c.ElapsedSeconds(start)
	if err != nil {
		t.Fatalf("ElapsedSeconds() failed: %v", err)
	}
	if got < 2 {
		t.Errorf("ElapsedSeconds() = %d, want at least 2", got)
	}
}

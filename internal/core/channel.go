// Package core defines the collaborators the game talks to: the line-based
// I/O channel, the random source and the clock.
package core

// LineChannel is a blocking request/response text interface.
type LineChannel interface {
	// WriteLine emits one line of text.
	WriteLine(text string) error
	// ReadLine blocks until a full line is available and returns it without
	// the trailing newline.
	ReadLine() (string, error)
}

// Tone classifies an outgoing line so a channel can style it.
type Tone int

const (
	TonePlain   Tone = iota
	ToneBanner       // Welcome banner
	TonePrompt       // Asks the player for input
	ToneHint         // Higher/lower feedback
	ToneSuccess      // Round won
	ToneWarning      // Recoverable input problem
	ToneFailure      // Round lost
)

// String returns a human-readable name for the tone.
func (t Tone) String() string {
	switch t {
	case TonePlain:
		return "Plain"
	case ToneBanner:
		return "Banner"
	case TonePrompt:
		return "Prompt"
	case ToneHint:
		return "Hint"
	case ToneSuccess:
		return "Success"
	case ToneWarning:
		return "Warning"
	case ToneFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// ToneWriter is implemented by channels that can style lines.
// Channels that don't implement it receive plain WriteLine calls.
type ToneWriter interface {
	WriteTone(tone Tone, text string) error
}

// Write emits text through ch, styled with tone when ch supports it.
func Write(ch LineChannel, tone Tone, text string) error {
	if tw, ok := ch.(ToneWriter); ok {
		return tw.WriteTone(tone, text)
	}
	return ch.WriteLine(text)
}

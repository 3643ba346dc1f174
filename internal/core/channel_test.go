package core

import "testing"

type plainChannel struct {
	lines []string
}

func (p *plainChannel) WriteLine(text string) error {
	p.lines = append(p.lines, text)
	return nil
}

func (p *plainChannel) ReadLine() (string, error) { return "", nil }

type tonedChannel struct {
	plainChannel
	tones []Tone
}

func (t *tonedChannel) WriteTone(tone Tone, text string) error {
	t.tones = append(t.tones, tone)
	return t.WriteLine(text)
}

func TestWriteFallsBackToPlain(t *testing.T) {
	ch := &plainChannel{}
	if err := Write(ch, ToneSuccess, "hello"); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if len(ch.lines) != 1 || ch.lines[0] != "hello" {
		t.Errorf("lines = %v, want [hello]", ch.lines)
	}
}

func TestWriteUsesToneWriter(t *testing.T) {
	ch := &tonedChannel{}
	if err := Write(ch, ToneHint, "higher"); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if len(ch.tones) != 1 || ch.tones[0] != ToneHint {
		t.Errorf("tones = %v, want [Hint]", ch.tones)
	}
}

func TestToneString(t *testing.T) {
	if got := ToneFailure.String(); got != "Failure" {
		t.Errorf("ToneFailure.String() = %q", got)
	}
	if got := Tone(99).String(); got != "Unknown" {
		t.Errorf("Tone(99).String() = %q", got)
	}
}

// Package console provides the line channel the game is played over,
// reading from an io.Reader and writing styled lines to an io.Writer.
package console

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numguess/internal/core"
)

const (
	defaultWidth = 80
	maxRuleWidth = 48
)

// Console is a core.LineChannel over a reader/writer pair.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	width  int
	styles Styles
}

// Option configures a Console.
type Option func(*Console)

// WithWidth sets the terminal width used to size the banner rule.
func WithWidth(width int) Option {
	return func(c *Console) {
		if width > 0 {
			c.width = width
		}
	}
}

// New creates a Console. Colours are detected from out, so writers that
// are not terminals receive plain text.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		width:  defaultWidth,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WriteLine writes text followed by a newline.
func (c *Console) WriteLine(text string) error {
	_, err := io.WriteString(c.out, text+"\n")
	return err
}

// WriteTone writes text styled for tone. Banners are followed by a rule.
func (c *Console) WriteTone(tone core.Tone, text string) error {
	styled := c.styles.Render(tone, text)
	if tone == core.ToneBanner {
		body := strings.TrimRight(styled, "\n")
		rule := c.styles.Rule.Render(strings.Repeat("─", min(c.width, maxRuleWidth)))
		styled = body + "\n" + rule + styled[len(body):]
	}
	return c.WriteLine(styled)
}

// ReadLine blocks until a full line is read and returns it without the
// line terminator. A final line without a newline is still returned;
// io.EOF is reported only when no input is left.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var _ core.LineChannel = (*Console)(nil)
var _ core.ToneWriter = (*Console)(nil)

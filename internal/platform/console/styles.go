package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numguess/internal/core"
)

// Styles maps tones to lipgloss styles.
type Styles struct {
	Banner  lipgloss.Style
	Prompt  lipgloss.Style
	Hint    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Failure lipgloss.Style
	Rule    lipgloss.Style
}

// NewStyles builds the default palette on renderer r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Banner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("6")),
		Hint:    r.NewStyle().Foreground(lipgloss.Color("3")),
		Success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("208")),
		Failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		Rule:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Render styles text for tone. Each line is styled separately so that
// embedded newlines survive without padding.
func (s Styles) Render(tone core.Tone, text string) string {
	var style lipgloss.Style
	switch tone {
	case core.ToneBanner:
		style = s.Banner
	case core.TonePrompt:
		style = s.Prompt
	case core.ToneHint:
		style = s.Hint
	case core.ToneSuccess:
		style = s.Success
	case core.ToneWarning:
		style = s.Warning
	case core.ToneFailure:
		style = s.Failure
	default:
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// Package painter renders the kvsh prompt with optional colour and bold
// styling. Styling is done with lipgloss, which drops escape codes when the
// output is not a terminal.
package painter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"Kvsh/internal/config"
)

// Painter holds the resolved prompt style.
type Painter struct {
	Colour string // lipgloss colour (ANSI index or hex), empty for terminal default
	Bold   bool   // Whether the prompt should be bold
	plain  bool   // True when no styling is applied at all
}

// NewPainter creates a Painter from cfg. A named theme overrides the colour
// fields; theme "none" or "" uses them as given, and with no colour and no
// bold the prompt is left plain.
func NewPainter(cfg config.Prompt) Painter {
	resolveTheme(&cfg)
	colour := resolveColor(cfg.Colour)
	return Painter{
		Colour: colour,
		Bold:   cfg.ColourBold,
		plain:  colour == "" && !cfg.ColourBold,
	}
}

// resolveTheme applies a predefined theme to the provided Prompt config.
func resolveTheme(cfg *config.Prompt) {

	switch strings.ToLower(strings.TrimSpace(cfg.Theme)) {
	case "kvsh":
		cfg.Colour = "yellow"
		cfg.ColourBold = false
	case "wildberries":
		cfg.Colour = "#CB11AB"
		cfg.ColourBold = true
	case "monokai":
		cfg.Colour = "#F92672"
		cfg.ColourBold = true
	case "ohmybash":
		cfg.Colour = "green"
		cfg.ColourBold = false
	}

}

// resolveColor converts a colour name into a lipgloss colour value. Hex
// codes and ANSI indexes are returned unchanged.
func resolveColor(colour string) string {

	colour = strings.TrimSpace(colour)

	switch strings.ToLower(colour) {
	case "", "default":
		return ""
	case "black":
		return "0"
	case "red":
		return "1"
	case "green":
		return "2"
	case "yellow":
		return "3"
	case "blue":
		return "12"
	case "magenta":
		return "5"
	case "cyan":
		return "6"
	case "white":
		return "7"
	case "bright yellow":
		return "11"
	default:
		return colour
	}

}

// Paint returns text rendered with the painter's style.
func (p Painter) Paint(text string) string {
	if p.plain {
		return text
	}
	style := lipgloss.NewStyle().Bold(p.Bold)
	if p.Colour != "" {
		style = style.Foreground(lipgloss.Color(p.Colour))
	}
	return style.Render(text)
}

// Package prompt builds the string written before each input read.
package prompt

import "Kvsh/internal/painter"

// DefaultPrompt is used when no prompt text is configured.
const DefaultPrompt = "> "

// Update returns text styled by painter, or DefaultPrompt when text is empty.
func Update(painter painter.Painter, text string) string {
	if text == "" {
		text = DefaultPrompt
	}
	return painter.Paint(text)
}

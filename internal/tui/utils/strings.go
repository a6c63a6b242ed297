package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateString cuts s to at most width display cells. Plain text gets an
// ellipsis at the cut; styled text is cut without one so escape sequences
// stay intact.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if strings.Contains(s, "\x1b") {
		if lipgloss.Width(s) <= width {
			return s
		}
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

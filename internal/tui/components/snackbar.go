package components

import (
	"strings"

	"scini/internal/tui/design"
)

// Snackbar is the transient banner at the bottom of the screen.
type Snackbar struct {
	Lines []string
	Width int
}

// NewSnackbar creates a snackbar showing lines
func NewSnackbar(lines []string) *Snackbar {
	return &Snackbar{Lines: lines}
}

// WithWidth caps the snackbar width
func (s *Snackbar) WithWidth(width int) *Snackbar {
	s.Width = width
	return s
}

// Render returns the styled snackbar, or "" when there is nothing to say.
func (s *Snackbar) Render() string {
	if len(s.Lines) == 0 {
		return ""
	}
	styled := make([]string, len(s.Lines))
	for i, l := range s.Lines {
		switch {
		case strings.Contains(l, "offline"):
			styled[i] = design.TextErrorStyle.Render(l)
		case strings.Contains(l, "online"):
			styled[i] = design.TextSuccessStyle.Render(l)
		default:
			styled[i] = l
		}
	}
	style := design.SnackbarStyle
	if s.Width > 0 {
		style = style.Copy().MaxWidth(s.Width)
	}
	return style.Render(strings.Join(styled, "\n"))
}

package components

import (
	"scini/internal/tui/design"
)

// StatusIndicator shows an online/offline dot with a label.
type StatusIndicator struct {
	Online   bool
	Text     string
	ShowText bool
}

// NewStatusIndicator creates a new status indicator
func NewStatusIndicator(online bool) *StatusIndicator {
	return &StatusIndicator{Online: online, ShowText: true}
}

// WithText sets the label
func (s *StatusIndicator) WithText(text string) *StatusIndicator {
	s.Text = text
	return s
}

// IconOnly hides the label
func (s *StatusIndicator) IconOnly() *StatusIndicator {
	s.ShowText = false
	return s
}

// Render returns the styled indicator
func (s *StatusIndicator) Render() string {
	icon := design.IconOffline
	if s.Online {
		icon = design.IconOnline
	}
	style := design.GetStatusStyle(s.Online)
	if !s.ShowText || s.Text == "" {
		return style.Render(icon)
	}
	return style.Render(design.IconText(icon, s.Text))
}

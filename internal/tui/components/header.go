package components

import (
	"strings"

	"scini/internal/tui/design"
	"scini/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the application header
type Header struct {
	Title        string
	Subtitle     string
	ShowMenu     bool
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title:    title,
		ShowMenu: true,
		Width:    80,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithMenu shows or hides the menu button
func (h *Header) WithMenu(show bool) *Header {
	h.ShowMenu = show
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	var leftParts []string
	if h.ShowMenu {
		leftParts = append(leftParts, design.KeyStyle.Render(design.IconMenu))
	}
	leftParts = append(leftParts, strings.ToUpper(h.Title))
	if h.Subtitle != "" {
		leftParts = append(leftParts, design.TextSecondaryStyle.Render(h.Subtitle))
	}
	leftContent := strings.Join(leftParts, " ")

	availableWidth := h.Width - design.SpaceSM*2
	content := leftContent
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(h.RightContent)
		if leftWidth+rightWidth+2 <= availableWidth {
			content = leftContent + strings.Repeat(" ", availableWidth-leftWidth-rightWidth) + h.RightContent
		} else {
			content = utils.TruncateString(leftContent, availableWidth)
		}
	}

	return design.HeaderStyle.Copy().
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}

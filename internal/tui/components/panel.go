package components

import (
	"strings"

	"scini/internal/tui/design"
	"scini/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames a block of content with an optional title.
type Panel struct {
	Title   string
	Content string
	Width   int
	Height  int
	Focused bool
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the outer panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// InnerSize returns the room left for content inside the frame.
func (p *Panel) InnerSize() (int, int) {
	style := p.style()
	w := max(p.width()-style.GetHorizontalFrameSize(), 1)
	h := max(p.height()-style.GetVerticalFrameSize(), 1)
	if p.Title != "" {
		h = max(h-1, 1)
	}
	return w, h
}

// Render returns the styled panel. Content is cut to fit, never wrapped.
func (p *Panel) Render() string {
	style := p.style()
	innerWidth, innerHeight := p.InnerSize()

	var lines []string
	if p.Title != "" {
		lines = append(lines, design.TitleStyle.Copy().MarginBottom(0).Render(utils.TruncateString(p.Title, innerWidth)))
	}

	contentLines := strings.Split(p.Content, "\n")
	if len(contentLines) > innerHeight {
		contentLines = contentLines[:innerHeight]
	}
	for _, line := range contentLines {
		lines = append(lines, utils.TruncateString(line, innerWidth))
	}
	for len(lines) < innerHeight+boolToInt(p.Title != "") {
		lines = append(lines, "")
	}

	return style.
		Width(p.width() - style.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) style() lipgloss.Style {
	if p.Focused {
		return design.PanelFocusedStyle
	}
	return design.PanelStyle
}

// width and height honor the given size down to what the frame needs.
func (p *Panel) width() int {
	return max(p.Width, p.style().GetHorizontalFrameSize()+1)
}

func (p *Panel) height() int {
	return max(p.Height, p.style().GetVerticalFrameSize()+1)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package components

import (
	"strings"

	"scini/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Layout splits the terminal between chrome, drawer and content.
type Layout struct {
	Width  int
	Height int

	// DrawerVisible reserves the drawer column on the left.
	DrawerVisible bool
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// WithDrawer reserves the drawer column when visible is true.
func (l *Layout) WithDrawer(visible bool) *Layout {
	l.DrawerVisible = visible
	return l
}

// DrawerWidth returns the width of the drawer column, zero when hidden. When
// the page would not fit next to it the drawer takes the whole width.
func (l *Layout) DrawerWidth() int {
	if !l.DrawerVisible {
		return 0
	}
	if !l.fitsBesideDrawer() {
		return l.Width
	}
	return design.DrawerWidth
}

// ContentWidth returns the width left for the page once the drawer took its share.
func (l *Layout) ContentWidth() int {
	return max(l.Width-l.DrawerWidth(), 0)
}

// PanelVisible reports whether the page has any columns left.
func (l *Layout) PanelVisible() bool {
	return l.ContentWidth() > 0
}

// FitsDrawer reports whether a drawer leaves the page its minimum width.
func FitsDrawer(width int) bool {
	return width >= design.DrawerWidth+design.MinPanelWidth
}

func (l *Layout) fitsBesideDrawer() bool {
	return FitsDrawer(l.Width)
}

// CalculateContentArea returns the available content height after accounting
// for the chrome rows above and below it.
func (l *Layout) CalculateContentArea(chromeHeights ...int) int {
	contentHeight := l.Height
	for _, h := range chromeHeights {
		contentHeight -= h
	}
	if contentHeight < 0 {
		contentHeight = 0
	}
	return contentHeight
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if gap > 0 && len(components) > 1 {
		spacer := strings.Repeat(" ", gap)
		parts := make([]string, 0, len(components)*2-1)
		for i, comp := range components {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, comp)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

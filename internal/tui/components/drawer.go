package components

import (
	"fmt"
	"strings"

	"scini/internal/tui/design"
	"scini/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// DrawerLink is one navigation entry.
type DrawerLink struct {
	Label    string
	Selected bool
}

// Drawer renders the navigation list.
type Drawer struct {
	Title  string
	Links  []DrawerLink
	Cursor int
	Width  int
	Height int

	// ShowCursor highlights the link under Cursor.
	ShowCursor bool
}

// NewDrawer creates a drawer for links
func NewDrawer(links []DrawerLink) *Drawer {
	return &Drawer{
		Title:  "Navigate",
		Links:  links,
		Cursor: -1,
		Width:  design.DrawerWidth,
	}
}

// WithCursor highlights link i
func (d *Drawer) WithCursor(i int) *Drawer {
	d.Cursor = i
	d.ShowCursor = true
	return d
}

// WithDimensions sets the outer size
func (d *Drawer) WithDimensions(width, height int) *Drawer {
	d.Width = width
	d.Height = height
	return d
}

// Render returns the styled drawer. Links after the first are numbered for
// quick jumps.
func (d *Drawer) Render() string {
	style := design.DrawerStyle
	inner := max(d.Width-style.GetHorizontalFrameSize(), 1)

	lines := []string{design.DrawerTitleStyle.Render(d.Title)}
	first, last := d.visibleLinks()
	for i := first; i < last; i++ {
		link := d.Links[i]
		prefix := "  "
		if i > 0 && i <= 9 {
			prefix = fmt.Sprintf("%d ", i)
		}
		label := utils.TruncateString(prefix+link.Label, inner-design.SpaceXS)
		lines = append(lines, design.GetLinkStyle(link.Selected, d.ShowCursor && i == d.Cursor).Render(label))
	}

	out := style.Width(max(d.Width-style.GetHorizontalBorderSize(), 1))
	if d.Height > 0 {
		out = out.Height(d.Height).MaxHeight(d.Height)
	}
	return out.Render(strings.Join(lines, "\n"))
}

// visibleLinks returns the window of links that fits under the title,
// scrolled so the cursor, or else the selected link, stays in view.
func (d *Drawer) visibleLinks() (int, int) {
	n := len(d.Links)
	if d.Height <= 0 {
		return 0, n
	}
	title := lipgloss.Height(design.DrawerTitleStyle.Render(d.Title))
	room := max(d.Height-design.DrawerStyle.GetVerticalFrameSize()-title, 0)
	if n <= room {
		return 0, n
	}

	anchor := 0
	if d.ShowCursor && d.Cursor >= 0 && d.Cursor < n {
		anchor = d.Cursor
	} else {
		for i := n - 1; i >= 0; i-- {
			if d.Links[i].Selected {
				anchor = i
				break
			}
		}
	}
	first := min(max(anchor-room/2, 0), n-room)
	return first, first + room
}

package view

import (
	"scini/internal/tui/components"
	"scini/internal/tui/design"
	"scini/internal/tui/shell"
)

// Frame is everything the view needs for one screen.
type Frame struct {
	Tree   shell.Tree
	Width  int
	Height int

	PageTitle string
	// Content is the active page, already scrolled and cut by the viewport.
	Content string

	// Transcript is the speech input field. It is shown while Speaking or
	// while it still holds a value.
	Transcript string
	Speaking   bool

	DrawerCursor int
	Online       bool
	BusConnected bool

	Status     string
	StatusType components.MessageType
	Help       string

	ShowLog bool
	LogView string
}

const (
	headerHeight = 1
	footerHeight = 1
)

// drawerVisible reports whether the drawer column is drawn. An opened drawer
// always shows; the pinned wide-layout drawer only while the page still fits
// beside it.
func drawerVisible(t shell.Tree, width int) bool {
	if t.Drawer.Opened {
		return true
	}
	return t.Wide && components.FitsDrawer(width)
}

// snackbarHeight is the room the banner takes. The banner gives way when the
// page would drop below its minimum height.
func snackbarHeight(t shell.Tree, height int) int {
	if !t.Snackbar.Active || len(t.Snackbar.Lines) == 0 {
		return 0
	}
	h := len(t.Snackbar.Lines) + 2
	if height-headerHeight-footerHeight-h < design.MinPanelHeight {
		return 0
	}
	return h
}

func layoutFor(t shell.Tree, width, height int) (*components.Layout, int) {
	l := components.NewLayout(width, height).WithDrawer(drawerVisible(t, width))
	return l, l.CalculateContentArea(headerHeight, footerHeight, snackbarHeight(t, height))
}

// ContentSize returns the room inside the page frame for a screen of the
// given size. The controller sizes its viewport with it.
func ContentSize(t shell.Tree, width, height int) (int, int) {
	l, h := layoutFor(t, width, height)
	return components.NewPanel("").WithDimensions(l.ContentWidth(), h).InnerSize()
}

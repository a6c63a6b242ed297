package view

import (
	"strings"

	"scini/internal/tui/components"
	"scini/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Render draws a frame.
func Render(f Frame) string {
	if f.Width == 0 || f.Height == 0 {
		return design.DimStyle.Render("Initializing... (waiting for window size)")
	}
	if !f.Tree.Resolved {
		return lipgloss.Place(f.Width, f.Height, lipgloss.Center, lipgloss.Center,
			design.DimStyle.Render("Starting "+f.Tree.Header.Title+"..."))
	}

	header := renderHeader(f)
	footer := renderFooter(f)

	bodyHeight := max(f.Height-headerHeight-footerHeight, 0)
	var body string
	if f.ShowLog {
		body = renderLogOverlay(f.LogView, f.Width, max(bodyHeight, 1))
	} else {
		sb := renderSnackbar(f)
		body = renderBody(f)
		if sb != "" {
			body = components.JoinVertical(body, sb)
		}
	}
	body = lipgloss.NewStyle().MaxWidth(f.Width).MaxHeight(bodyHeight).Render(body)

	parts := []string{header}
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	return lipgloss.NewStyle().MaxWidth(f.Width).MaxHeight(f.Height).Render(components.JoinVertical(parts...))
}

func renderHeader(f Frame) string {
	var right []string
	if f.Speaking || f.Transcript != "" {
		right = append(right, design.SafeIcon(design.IconMic)+f.Transcript)
	}
	right = append(right,
		components.NewStatusIndicator(f.Online).WithText("net").Render(),
		components.NewStatusIndicator(f.BusConnected).WithText("bus").Render(),
	)

	if f.Tree.Active != f.Tree.Route && f.Tree.Header.BackHref != "" {
		right = append([]string{design.SafeIcon(design.IconBack) + f.Tree.Header.BackHref}, right...)
	}

	return components.NewHeader(f.Tree.Header.Title).
		WithMenu(!f.Tree.Header.MenuHidden || !drawerVisible(f.Tree, f.Width)).
		WithSubtitle(f.PageTitle).
		WithRightContent(strings.Join(right, "  ")).
		WithWidth(f.Width).
		Render()
}

func renderBody(f Frame) string {
	layout, contentHeight := layoutFor(f.Tree, f.Width, f.Height)

	var page string
	if layout.PanelVisible() {
		page = components.NewPanel("").
			WithContent(f.Content).
			WithDimensions(layout.ContentWidth(), contentHeight).
			SetFocused(!f.Tree.Drawer.Opened).
			Render()
	}

	if !layout.DrawerVisible {
		return page
	}

	links := make([]components.DrawerLink, len(f.Tree.Drawer.Links))
	for i, l := range f.Tree.Drawer.Links {
		links[i] = components.DrawerLink{Label: l.Label, Selected: l.Selected}
	}
	drawer := components.NewDrawer(links).WithDimensions(layout.DrawerWidth(), contentHeight)
	if f.Tree.Drawer.Opened {
		drawer.WithCursor(f.DrawerCursor)
	}
	if page == "" {
		return drawer.Render()
	}
	return components.JoinHorizontal(0, drawer.Render(), page)
}

func renderSnackbar(f Frame) string {
	if snackbarHeight(f.Tree, f.Height) == 0 {
		return ""
	}
	return components.NewSnackbar(f.Tree.Snackbar.Lines).WithWidth(f.Width).Render()
}

func renderFooter(f Frame) string {
	bar := components.NewStatusBar(f.Width).
		WithLeftText(f.Tree.Footer).
		WithRightText(f.Help)
	if f.Status != "" {
		bar.WithMessage(f.Status, f.StatusType)
	}
	return bar.Render()
}

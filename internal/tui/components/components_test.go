package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"scini/internal/tui/design"
)

func TestHeaderRender(t *testing.T) {
	out := NewHeader("scini").WithRightContent("net").WithWidth(40).Render()
	assert.Contains(t, out, "SCINI")
	assert.Contains(t, out, "net")
	assert.LessOrEqual(t, lipgloss.Width(out), 40)
}

func TestHeaderDropsRightContentWhenNarrow(t *testing.T) {
	out := NewHeader("scini").WithRightContent(strings.Repeat("x", 50)).WithWidth(30).Render()
	assert.NotContains(t, out, "xxxxx")
}

func TestStatusBarMessageWins(t *testing.T) {
	out := NewStatusBar(60).
		WithLeftText("left").
		WithRightText("right").
		WithMessage("copied", MessageSuccess).
		Render()
	assert.Contains(t, out, "copied")
	assert.NotContains(t, out, "left")
}

func TestStatusBarLeftRight(t *testing.T) {
	out := NewStatusBar(60).WithLeftText("left").WithRightText("right").Render()
	assert.Contains(t, out, "left")
	assert.Contains(t, out, "right")
	assert.Equal(t, 60, lipgloss.Width(out))
}

func TestPanelCutsContent(t *testing.T) {
	p := NewPanel("Title").
		WithContent("one\ntwo\nthree\nfour\nfive").
		WithDimensions(30, 5)
	out := p.Render()

	_, innerHeight := p.InnerSize()
	assert.Equal(t, 2, innerHeight)
	assert.Contains(t, out, "one")
	assert.NotContains(t, out, "three")
	assert.Equal(t, 5, lipgloss.Height(out))
}

func TestDrawerNumbersLinks(t *testing.T) {
	out := NewDrawer([]DrawerLink{
		{Label: "Home", Selected: true},
		{Label: "Camera", Selected: true},
		{Label: "Controls"},
	}).WithCursor(2).Render()

	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "1 Camera")
	assert.Contains(t, out, "2 Controls")
}

func TestSnackbarRender(t *testing.T) {
	assert.Empty(t, NewSnackbar(nil).Render())
	out := NewSnackbar([]string{"Network: offline.", "Clump: offline"}).Render()
	assert.Contains(t, out, "Network: offline.")
	assert.Contains(t, out, "Clump: offline")
}

func TestLayoutRegions(t *testing.T) {
	l := NewLayout(120, 40).WithDrawer(true)
	assert.Equal(t, 24, l.DrawerWidth())
	assert.Equal(t, 96, l.ContentWidth())
	assert.Equal(t, 36, l.CalculateContentArea(1, 1, 2))

	l.WithDrawer(false)
	assert.Equal(t, 0, l.DrawerWidth())
	assert.Equal(t, 120, l.ContentWidth())
	assert.Equal(t, 0, NewLayout(10, 2).CalculateContentArea(5))
}

func manyLinks(n int) []DrawerLink {
	links := make([]DrawerLink, n)
	for i := range links {
		links[i] = DrawerLink{Label: fmt.Sprintf("Link%02d", i)}
	}
	return links
}

func TestDrawerScrollsToCursor(t *testing.T) {
	out := NewDrawer(manyLinks(10)).WithDimensions(24, 6).WithCursor(9).Render()
	assert.Equal(t, 6, lipgloss.Height(out))
	assert.Contains(t, out, "Link09")
	assert.NotContains(t, out, "Link00")
}

func TestDrawerScrollsToSelected(t *testing.T) {
	links := manyLinks(10)
	links[7].Selected = true
	out := NewDrawer(links).WithDimensions(24, 6).Render()
	assert.Equal(t, 6, lipgloss.Height(out))
	assert.Contains(t, out, "Link07")
	assert.NotContains(t, out, "Link01")
}

func TestDrawerShowsEverythingWhenRoomy(t *testing.T) {
	out := NewDrawer(manyLinks(3)).WithDimensions(24, 20).Render()
	assert.Equal(t, 20, lipgloss.Height(out))
	assert.Contains(t, out, "Link00")
	assert.Contains(t, out, "Link02")
}

func TestLayoutNarrowDrawerTakesWholeWidth(t *testing.T) {
	l := NewLayout(40, 24).WithDrawer(true)
	assert.Equal(t, 40, l.DrawerWidth())
	assert.False(t, l.PanelVisible())

	assert.True(t, FitsDrawer(design.DrawerWidth+design.MinPanelWidth))
	assert.False(t, FitsDrawer(design.DrawerWidth+design.MinPanelWidth-1))
	assert.True(t, NewLayout(40, 24).PanelVisible())
}

func TestPanelHonorsSmallSizes(t *testing.T) {
	out := NewPanel("").WithContent("hello").WithDimensions(12, 4).Render()
	assert.Equal(t, 4, lipgloss.Height(out))
	assert.Equal(t, 12, lipgloss.Width(out))
}

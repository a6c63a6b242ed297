package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"scini/internal/tui/pages"
	"scini/internal/tui/shell"
)

func testTree() shell.Tree {
	return shell.Tree{
		Resolved: true,
		Route:    "camera",
		Active:   "camera",
		Header:   shell.Header{Title: "SCINI", BackHref: "/camera"},
		Drawer: shell.Drawer{Links: []shell.Link{
			{Label: "Home", Href: "/camera", Route: "camera", Selected: true},
			{Label: "Camera", Href: "/camera", Route: "camera", Selected: true},
			{Label: "Controls", Href: "/controls", Route: "controls"},
		}},
		Footer: "Made with <3 by the Polymer and SCINI team.",
		Snackbar: shell.Snackbar{
			Lines: []string{"Network: online.", "SCINI ROV: online", "Clump: online"},
		},
	}
}

func TestRenderWaitsForSize(t *testing.T) {
	assert.Contains(t, Render(Frame{Tree: testTree()}), "waiting for window size")
}

func TestRenderUnresolved(t *testing.T) {
	tree := testTree()
	tree.Resolved = false
	out := Render(Frame{Tree: tree, Width: 80, Height: 24})
	assert.Contains(t, out, "Starting SCINI")
	assert.NotContains(t, out, "Made with")
}

func TestRenderFillsScreen(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*shell.Tree)
	}{
		{"narrow", func(*shell.Tree) {}},
		{"wide", func(t *shell.Tree) { t.Wide = true }},
		{"drawer", func(t *shell.Tree) { t.Drawer.Opened = true }},
		{"snackbar", func(t *shell.Tree) { t.Snackbar.Active = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := testTree()
			tt.mutate(&tree)
			out := Render(Frame{Tree: tree, Width: 100, Height: 30, Content: "hello"})
			assert.Equal(t, 30, lipgloss.Height(out))
			assert.Contains(t, out, "hello")
			assert.Contains(t, out, "Made with <3")
		})
	}
}

// fullTree carries every drawer link of the default route table.
func fullTree() shell.Tree {
	tree := testTree()
	tree.Drawer.Links = []shell.Link{{Label: "Home", Href: "/camera", Route: "camera"}}
	for _, e := range pages.DefaultTable().Entries() {
		tree.Drawer.Links = append(tree.Drawer.Links, shell.Link{
			Label: e.Label, Href: "/" + e.Route, Route: e.Route, Selected: e.Route == "camera",
		})
	}
	return tree
}

func TestRenderFitsSmallScreens(t *testing.T) {
	sizes := []struct{ w, h int }{
		{100, 30}, {80, 20}, {80, 16}, {40, 24}, {30, 10}, {44, 12}, {20, 5},
	}
	for _, sz := range sizes {
		for _, wide := range []bool{false, true} {
			tree := fullTree()
			tree.Wide = wide
			tree.Drawer.Opened = !wide
			tree.Snackbar.Active = true

			out := Render(Frame{Tree: tree, Width: sz.w, Height: sz.h, Content: "hello", DrawerCursor: 9})
			assert.Equal(t, sz.h, lipgloss.Height(out), "%dx%d wide=%v", sz.w, sz.h, wide)
			assert.LessOrEqual(t, lipgloss.Width(out), sz.w, "%dx%d wide=%v", sz.w, sz.h, wide)
			assert.Contains(t, strings.Split(out, "\n")[0], "SCINI", "header stays on the first row")
		}
	}
}

func TestRenderOpenedDrawerHidesPageWhenNarrow(t *testing.T) {
	tree := fullTree()
	tree.Drawer.Opened = true
	out := Render(Frame{Tree: tree, Width: 40, Height: 24, Content: "hello"})
	assert.Contains(t, out, "Controls")
	assert.NotContains(t, out, "hello")

	w, _ := ContentSize(tree, 40, 24)
	assert.Equal(t, 1, w)
}

func TestRenderPinnedDrawerGivesWayWhenNarrow(t *testing.T) {
	tree := fullTree()
	tree.Wide = true
	out := Render(Frame{Tree: tree, Width: 40, Height: 24, Content: "hello"})
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "Controls")
}

func TestRenderSnackbarGivesWayWhenShort(t *testing.T) {
	tree := testTree()
	tree.Snackbar.Active = true
	out := Render(Frame{Tree: tree, Width: 80, Height: 8, Content: "hello"})
	assert.NotContains(t, out, "Clump")
	assert.Contains(t, out, "hello")
}

func TestRenderBackHintOnFallbackPage(t *testing.T) {
	tree := testTree()
	tree.Route = "nowhere"
	tree.Active = "404"
	tree.Header.BackHref = "/about"
	out := Render(Frame{Tree: tree, Width: 100, Height: 30})
	assert.Contains(t, out, "/about")

	out = Render(Frame{Tree: testTree(), Width: 100, Height: 30})
	assert.NotContains(t, strings.Split(out, "\n")[0], "/camera")
}

func TestRenderDrawerOnlyWhenVisible(t *testing.T) {
	tree := testTree()
	out := Render(Frame{Tree: tree, Width: 100, Height: 30})
	assert.NotContains(t, out, "Controls")

	tree.Drawer.Opened = true
	out = Render(Frame{Tree: tree, Width: 100, Height: 30})
	assert.Contains(t, out, "2 Controls")
}

func TestRenderSnackbar(t *testing.T) {
	tree := testTree()
	tree.Snackbar.Active = true
	out := Render(Frame{Tree: tree, Width: 100, Height: 30})
	assert.Contains(t, out, "Network: online.")
	assert.Contains(t, out, "Clump: online")
}

func TestRenderTranscriptAndStatus(t *testing.T) {
	out := Render(Frame{
		Tree:       testTree(),
		Width:      100,
		Height:     30,
		Speaking:   true,
		Transcript: "lights",
		Status:     "Logs copied to clipboard",
	})
	assert.Contains(t, out, "lights")
	assert.Contains(t, out, "Logs copied to clipboard")
	assert.NotContains(t, out, "Made with")
}

func TestRenderLogOverlay(t *testing.T) {
	out := Render(Frame{Tree: testTree(), Width: 100, Height: 30, ShowLog: true, LogView: "12:00:00 [INFO] Shell: hi"})
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "Shell: hi")
}

func TestContentSize(t *testing.T) {
	tree := testTree()
	w, h := ContentSize(tree, 100, 30)
	assert.Equal(t, 30-2-2, h)
	assert.Equal(t, 100-4, w)

	tree.Wide = true
	tree.Snackbar.Active = true
	w2, h2 := ContentSize(tree, 100, 30)
	assert.Less(t, w2, w)
	assert.Equal(t, h-5, h2)
}

func TestPrepareLogContent(t *testing.T) {
	out := PrepareLogContent([]string{"a [ERROR] x", "b [WARN] y", "c [DEBUG] z", "d"})
	assert.Equal(t, 4, lipgloss.Height(out))
	assert.Contains(t, out, "[ERROR] x")
}

package pages

import (
	"strings"

	"scini/internal/state"
	"scini/internal/tui/design"
)

type controlsPage struct{ base }

// NewControls builds the controls container. It echoes the last voice or
// typed command carried in the q parameter.
func NewControls() Page {
	return &controlsPage{base{route: state.RouteControls, title: "Controls"}}
}

func (p *controlsPage) View(ctx Context) string {
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render("Controls"))
	b.WriteString("\n")
	if ctx.Query == "" {
		b.WriteString(design.DimStyle.Render("No command yet. Press / and speak (type) one, enter to send."))
		return b.String()
	}
	b.WriteString(design.SubtitleStyle.Render("Last command"))
	b.WriteString("\n")
	b.WriteString(design.IconText(design.IconMic, design.KeyStyle.Render(ctx.Query)))
	return b.String()
}

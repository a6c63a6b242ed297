package pages

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"scini/internal/state"
	"scini/internal/tui/design"
	"scini/internal/tui/utils"
)

type cameraPage struct{ base }

// NewCamera builds the camera container. It lists the configured cameras.
func NewCamera() Page {
	return &cameraPage{base{route: state.RouteCamera, title: "Camera"}}
}

func (p *cameraPage) View(ctx Context) string {
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render(design.IconText(design.IconCamera, "Cameras")))
	b.WriteString("\n")

	if len(ctx.CameraMap) == 0 {
		b.WriteString(design.DimStyle.Render("No cameras configured."))
		b.WriteString("\n")
		b.WriteString(design.DimStyle.Render(`Seed one with: scini storage set cameraMap '{"cam1":{"url":"rtsp://..."}}'`))
		return b.String()
	}

	ids := make([]string, 0, len(ctx.CameraMap))
	for id := range ctx.CameraMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		line := fmt.Sprintf("%s %s  %s", design.IconArrow, design.KeyStyle.Render(id), describeCamera(ctx.CameraMap[id]))
		if ctx.Width > 0 {
			line = utils.TruncateString(line, ctx.Width)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// describeCamera renders a camera configuration as compact JSON with sorted keys.
func describeCamera(cfg state.CameraConfig) string {
	if len(cfg) == 0 {
		return design.DimStyle.Render("{}")
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return design.TextErrorStyle.Render(err.Error())
	}
	return design.TextSecondaryStyle.Render(string(data))
}

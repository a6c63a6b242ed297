package pages

import (
	"fmt"
	"strings"

	"scini/internal/state"
	"scini/internal/tui/design"
	"scini/internal/tui/utils"
)

// Credits is the line shown in the footer and on the about page.
const Credits = "Made with <3 by the Polymer and SCINI team."

type filesPage struct{ base }

// NewFiles builds the files container, the persisted keys.
func NewFiles() Page {
	return &filesPage{base{route: state.RouteFiles, title: "Files"}}
}

func (p *filesPage) View(ctx Context) string {
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render(design.IconText(design.IconDatabase, "Files")))
	b.WriteString("\n")
	if ctx.StoragePath != "" {
		b.WriteString(design.SubtitleStyle.Render(ctx.StoragePath))
		b.WriteString("\n")
	}
	if len(ctx.StorageKeys) == 0 {
		b.WriteString(design.DimStyle.Render("Nothing stored."))
		return b.String()
	}
	for _, k := range ctx.StorageKeys {
		b.WriteString(design.IconArrow + " " + k + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type troubleshootingPage struct{ base }

// NewTroubleshooting builds the troubleshooting container: link state and
// the tail of the activity log.
func NewTroubleshooting() Page {
	return &troubleshootingPage{base{route: state.RouteTroubleshooting, title: "Troubleshooting"}}
}

func (p *troubleshootingPage) View(ctx Context) string {
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render("Troubleshooting"))
	b.WriteString("\n")

	network := design.GetStatusStyle(!ctx.Offline).Render(onlineWord(!ctx.Offline))
	b.WriteString(fmt.Sprintf("Network: %s\n", network))
	b.WriteString(busLine(ctx))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Intents dispatched: %d\n", ctx.Dispatched))
	b.WriteString(dropLine("Bus messages dropped", ctx.BusDropped))
	b.WriteString(dropLine("Log entries dropped", ctx.LogsDropped))
	b.WriteString("\n")

	b.WriteString(design.SubtitleStyle.Render("Activity log (y to copy)"))
	b.WriteString("\n")
	if len(ctx.ActivityLog) == 0 {
		b.WriteString(design.DimStyle.Render("Empty."))
		return b.String()
	}
	lines := ctx.ActivityLog
	if room := ctx.Height - 8; room > 0 && len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for _, l := range lines {
		if ctx.Width > 0 {
			l = utils.TruncateString(l, ctx.Width)
		}
		b.WriteString(l)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func dropLine(label string, n int64) string {
	if n == 0 {
		return fmt.Sprintf("%s: 0\n", label)
	}
	return design.TextWarningStyle.Render(fmt.Sprintf("%s%s: %d", design.SafeIcon(design.IconWarning), label, n)) + "\n"
}

type cameraGLPage struct{ base }

// NewCameraGL builds the GL camera container.
func NewCameraGL() Page {
	return &cameraGLPage{base{route: state.RouteCameraGL, title: "CameraGL"}}
}

func (p *cameraGLPage) View(ctx Context) string {
	return design.TitleStyle.Render("CameraGL") + "\n" +
		design.DimStyle.Render(fmt.Sprintf("Hardware rendered video needs a graphical client. %d camera(s) configured.", len(ctx.CameraMap)))
}

// ReplayPlaceholder is the fixed content of the replay container.
const ReplayPlaceholder = "Replay is not available yet."

type replayPage struct{ base }

// NewReplay builds the replay container.
func NewReplay() Page {
	return &replayPage{base{route: state.RouteReplay, title: "Replay"}}
}

func (p *replayPage) View(Context) string {
	return design.TitleStyle.Render("Replay") + "\n" + design.DimStyle.Render(ReplayPlaceholder)
}

type aboutPage struct{ base }

// NewAbout builds the about container.
func NewAbout() Page {
	return &aboutPage{base{route: state.RouteAbout, title: "About"}}
}

func (p *aboutPage) View(ctx Context) string {
	title := ctx.AppTitle
	if title == "" {
		title = "SCINI"
	}
	version := ctx.Version
	if version == "" {
		version = "dev"
	}
	return strings.Join([]string{
		design.TitleStyle.Render(title),
		"Operator shell for the SCINI remotely operated vehicle.",
		fmt.Sprintf("Version: %s", version),
		"",
		design.DimStyle.Render(Credits),
	}, "\n")
}

type notFoundPage struct{ base }

// NewNotFound builds the fallback container for unknown routes.
func NewNotFound() Page {
	return &notFoundPage{base{route: state.RouteNotFound, title: "Oops!"}}
}

func (p *notFoundPage) View(ctx Context) string {
	route := ctx.Route
	if route == "" {
		route = "/"
	}
	return design.TitleStyle.Render("Oops! You hit a 404") + "\n" +
		fmt.Sprintf("The page %s doesn't exist. Head back home (1) and try again?", design.KeyStyle.Render(route))
}

func onlineWord(online bool) string {
	if online {
		return "online"
	}
	return "offline"
}

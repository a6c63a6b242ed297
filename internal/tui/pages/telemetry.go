package pages

import (
	"fmt"
	"sort"
	"strings"

	"scini/internal/state"
	"scini/internal/tui/design"
	"scini/internal/tui/utils"
)

type telemetryPage struct{ base }

// NewTelemetry builds the telemetry container, a newest-first feed of bus
// messages.
func NewTelemetry() Page {
	return &telemetryPage{base{route: state.RouteTelemetry, title: "Telemetry"}}
}

func (p *telemetryPage) View(ctx Context) string {
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render("Telemetry"))
	b.WriteString("\n")
	b.WriteString(busLine(ctx))
	b.WriteString("\n")

	if len(ctx.Telemetry) == 0 {
		b.WriteString(design.DimStyle.Render("Waiting for messages..."))
		return b.String()
	}

	limit := len(ctx.Telemetry)
	if ctx.Height > 2 && limit > ctx.Height-2 {
		limit = ctx.Height - 2
	}
	for i := 0; i < limit; i++ {
		s := ctx.Telemetry[len(ctx.Telemetry)-1-i]
		line := fmt.Sprintf("%s %s %s",
			design.DimStyle.Render(s.Time.Format("15:04:05")),
			design.KeyStyle.Render(s.Topic),
			s.Value)
		if ctx.Width > 0 {
			line = utils.TruncateString(line, ctx.Width)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type numbersPage struct{ base }

// NewNumbers builds the numbers container, the latest value per topic.
func NewNumbers() Page {
	return &numbersPage{base{route: state.RouteNumbers, title: "Numbers"}}
}

func (p *numbersPage) View(ctx Context) string {
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render("Numbers"))
	b.WriteString("\n")

	if len(ctx.Latest) == 0 {
		b.WriteString(design.DimStyle.Render("No readings yet."))
		return b.String()
	}

	topics := make([]string, 0, len(ctx.Latest))
	keyWidth := 0
	for topic := range ctx.Latest {
		topics = append(topics, topic)
		if len(topic) > keyWidth {
			keyWidth = len(topic)
		}
	}
	sort.Strings(topics)

	for _, topic := range topics {
		line := fmt.Sprintf("%-*s  %s", keyWidth, topic, ctx.Latest[topic].Value)
		if ctx.Width > 0 {
			line = utils.TruncateString(line, ctx.Width)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func busLine(ctx Context) string {
	if ctx.BusConnected {
		return design.TextSuccessStyle.Render(design.IconText(design.IconOnline, "bus connected"))
	}
	return design.TextErrorStyle.Render(design.IconText(design.IconOffline, "bus disconnected"))
}

package view

import (
	"strings"

	"scini/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

func renderLogOverlay(logView string, width, height int) string {
	title := design.TitleStyle.Copy().MarginBottom(0).Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, logView)
	style := design.LogOverlayStyle
	return style.Copy().
		Width(max(width-style.GetHorizontalBorderSize(), 1)).
		Height(max(height-style.GetVerticalFrameSize(), 1)).
		MaxHeight(height).
		Render(content)
}

// LogOverlaySize returns the room for the log viewport inside the overlay.
func LogOverlaySize(width, height int) (int, int) {
	style := design.LogOverlayStyle
	h := height - headerHeight - footerHeight - style.GetVerticalFrameSize() - 1
	return max(width-style.GetHorizontalFrameSize(), 1), max(h, 1)
}

// PrepareLogContent colors activity log lines by level.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}

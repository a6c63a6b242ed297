package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units, one cell each.
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	// Drawer width in wide layout, border included.
	DrawerWidth = 24

	MinPanelHeight = 3
	MinPanelWidth  = 20
)

// Color palette. The vehicle console runs on a dark control-room theme, the
// light variants only keep it legible on light terminals.
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#1565C0",
		Dark:  "#4FC3F7",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#2E7D32",
		Dark:  "#66BB6A",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#C62828",
		Dark:  "#EF5350",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#EF6C00",
		Dark:  "#FFA726",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FAFAFA",
		Dark:  "#020202",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#ECEFF1",
		Dark:  "#121212",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#CFD8DC",
		Dark:  "#1E1E1E",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#B0BEC5",
		Dark:  "#37474F",
	}
	ColorBorderFocus = ColorPrimary

	ColorText = lipgloss.AdaptiveColor{
		Light: "#212121",
		Dark:  "#FAFAFA",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#607D8B",
		Dark:  "#B0BEC5",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#90A4AE",
		Dark:  "#607D8B",
	}
)

// Text styles
var (
	TextStyle          = lipgloss.NewStyle().Foreground(ColorText)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	TextWarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	DimStyle           = lipgloss.NewStyle().Foreground(ColorTextMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(SpaceXS)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// Chrome styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarErrorStyle = StatusBarStyle.Copy().
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarSuccessStyle = StatusBarStyle.Copy().
				Background(ColorSuccess).
				Foreground(ColorBackground)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	PanelFocusedStyle = PanelStyle.Copy().
				BorderForeground(ColorBorderFocus)

	DrawerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	DrawerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTextSecondary).
				MarginBottom(SpaceXS)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(SpaceXS)

	ListItemSelectedStyle = ListItemStyle.Copy().
				Foreground(ColorPrimary).
				Bold(true)

	ListItemCursorStyle = ListItemStyle.Copy().
				Background(ColorSurfaceAlt)

	SnackbarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	// Transcript field: placeholder and typed text.
	InputStyle        = DimStyle.Copy().Italic(true)
	InputFocusedStyle = TextStyle.Copy().Bold(true)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceXS)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// GetLinkStyle picks the drawer style for a link.
func GetLinkStyle(selected, cursor bool) lipgloss.Style {
	switch {
	case selected && cursor:
		return ListItemSelectedStyle.Copy().Background(ColorSurfaceAlt)
	case selected:
		return ListItemSelectedStyle
	case cursor:
		return ListItemCursorStyle
	default:
		return ListItemStyle
	}
}

// GetStatusStyle colors an online/offline indicator.
func GetStatusStyle(online bool) lipgloss.Style {
	if online {
		return TextSuccessStyle
	}
	return TextErrorStyle
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

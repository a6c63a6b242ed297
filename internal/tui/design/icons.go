package design

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	IconOnline   = "●"
	IconOffline  = "○"
	IconCamera   = "📷"
	IconMenu     = "☰"
	IconMic      = "🎤"
	IconWarning  = "⚠"
	IconArrow    = "›"
	IconBack     = "‹"
	IconDatabase = "🗄"
)

// SafeIcon appends enough spaces after icon that a wide glyph does not
// swallow the character that follows it.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return icon + strings.Repeat(" ", spaces)
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return fmt.Sprintf("%s%s", SafeIcon(icon), text)
}

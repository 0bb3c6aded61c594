package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorPink
	ColorPurple
)

// namedColors maps display tags used by entities to terminal colors.
// Keys are lower-case; lookups are case-insensitive.
var namedColors = map[string]Color{
	"red":          ColorRed,
	"green":        ColorBrightGreen,
	"lightgreen":   ColorGreen,
	"darkseagreen": ColorCyan,
	"yellow":       ColorBrightYellow,
	"gold":         ColorYellow,
	"blue":         ColorBlue,
	"aqua":         ColorBrightBlue,
	"cyan":         ColorCyan,
	"white":        ColorWhite,
	"orange":       ColorOrange,
	"brown":        ColorBrown,
	"pink":         ColorPink,
	"hotpink":      ColorBrightMagenta,
	"magenta":      ColorMagenta,
	"purple":       ColorPurple,
	"gray":         ColorGray,
	"grey":         ColorGray,
}

// ParseColor resolves a display tag such as "HotPink" to a terminal color.
// Unknown names return ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

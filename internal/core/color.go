package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the board, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorCyan
	ColorBrightCyan
	ColorGreen
	ColorBrightGreen
)

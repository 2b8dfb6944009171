package core

// Color is a foreground color for a screen cell.
// The platform maps it to an ANSI 256-color code.
type Color uint8

// Colors used by the Pong renderer.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorCyan
	ColorYellow
	ColorWhite
	ColorGray
	ColorBrightBlue
	ColorBrightWhite
)

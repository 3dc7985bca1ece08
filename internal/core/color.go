package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform layers.
type Color uint8

// Predefined colors. The tetromino palette uses the bright variants so that
// pieces stand out against the dimmer board frame.
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
	ColorOrange
	ColorGray
)

// ANSI returns the ANSI 256-color code used to display the color.
// ColorDefault returns -1, meaning "terminal default".
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorMagenta:
		return 5
	case ColorCyan:
		return 6
	case ColorWhite:
		return 7
	case ColorBrightRed:
		return 9
	case ColorBrightGreen:
		return 10
	case ColorBrightYellow:
		return 11
	case ColorBrightBlue:
		return 12
	case ColorBrightMagenta:
		return 13
	case ColorBrightCyan:
		return 14
	case ColorOrange:
		return 208
	case ColorGray:
		return 245
	default:
		return -1
	}
}

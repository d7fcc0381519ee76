package core

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
	ColorAmber // Beer
	ColorFoam  // Beer head
	ColorGhost // Previous-frame afterimage
)

// MeterColor shades an intoxication meter by how full it is.
func MeterColor(fraction float64) Color {
	switch {
	case fraction < 0.25:
		return ColorBrightGreen
	case fraction < 0.5:
		return ColorAmber
	case fraction < 0.75:
		return ColorOrange
	default:
		return ColorBrightRed
	}
}

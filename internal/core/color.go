package core

// Color is a palette index for a screen cell.
// The platform layer maps it to terminal colours.
type Color uint8

// Palette used by the playfield, HUD and overlays.
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
)

// Cell is a single character cell with foreground and background colours.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Reverse returns the cell with foreground and background swapped.
// A default foreground is treated as white so reversed blank cells still light up.
func (c Cell) Reverse() Cell {
	fg := c.Fg
	if fg == ColorDefault {
		fg = ColorWhite
	}
	return Cell{Rune: c.Rune, Fg: c.Bg, Bg: fg}
}

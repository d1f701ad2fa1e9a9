package core

import "fmt"

// Color is a 24-bit foreground colour for a screen cell.
// The zero value is the terminal's default foreground.
type Color uint32

const colorSet = 1 << 24

// ColorDefault leaves the cell in the terminal's own foreground colour.
const ColorDefault Color = 0

// RGB builds a colour from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the colour as "#rrggbb", or "" for the default colour.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Palette used by the HUD and overlays.
var (
	ColorWhite     = RGB(255, 255, 255)
	ColorLightGray = RGB(200, 200, 200)
	ColorYellow    = RGB(255, 255, 0)
	ColorGold      = RGB(255, 215, 0)
	ColorSoftRed   = RGB(255, 100, 100)
	ColorSoftGreen = RGB(100, 255, 100)
	ColorSteelBlue = RGB(70, 130, 180)
	ColorCrimson   = RGB(220, 20, 60)
)

package core

import "image/color"

// Color is a foreground color for a screen cell. The terminal front end
// maps it to an ANSI code, the desktop front end to RGB.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed           // Red balloons
	ColorGreen         // Green balloons
	ColorYellow
	ColorBlue // Blue balloons
	ColorMagenta
	ColorCyan
	ColorWhite // Axis labels
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow // Rocket track, titles
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange // Rocket
	ColorGray   // Axes and guide lines
)

var rgba = [...]color.RGBA{
	ColorDefault:       {0xe0, 0xe0, 0xe0, 0xff},
	ColorRed:           {0xe0, 0x40, 0x40, 0xff},
	ColorGreen:         {0x40, 0xc0, 0x40, 0xff},
	ColorYellow:        {0xd0, 0xc0, 0x30, 0xff},
	ColorBlue:          {0x40, 0x70, 0xe0, 0xff},
	ColorMagenta:       {0xc0, 0x40, 0xc0, 0xff},
	ColorCyan:          {0x40, 0xc0, 0xc0, 0xff},
	ColorWhite:         {0xc0, 0xc0, 0xc0, 0xff},
	ColorBrightRed:     {0xff, 0x60, 0x60, 0xff},
	ColorBrightGreen:   {0x5f, 0xd7, 0x5f, 0xff},
	ColorBrightYellow:  {0xff, 0xff, 0x55, 0xff},
	ColorBrightBlue:    {0x60, 0x90, 0xff, 0xff},
	ColorBrightMagenta: {0xff, 0x70, 0xff, 0xff},
	ColorBrightCyan:    {0x70, 0xff, 0xff, 0xff},
	ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	ColorGray:          {0x80, 0x80, 0x80, 0xff},
}

// RGBA returns the color used when drawing to an image.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(rgba) {
		return rgba[c]
	}
	return rgba[ColorDefault]
}

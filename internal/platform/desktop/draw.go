package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/games/balloons"
	"github.com/vovakirdan/balloon-math/internal/level"
)

// Window layout in pixels
const (
	ScreenWidth  = 960
	ScreenHeight = 720
	hudHeight    = 28
	footerHeight = 64
	lineHeight   = 16
	balloonSize  = 9
)

var fontFace = basicfont.Face7x13

var (
	bgColor     = color.RGBA{0x12, 0x16, 0x22, 0xff}
	gridColor   = color.RGBA{0x2a, 0x30, 0x3c, 0xff}
	panelColor  = color.RGBA{0x1e, 0x24, 0x34, 0xf0}
	borderColor = color.RGBA{0xa0, 0xa0, 0xb0, 0xff}
	axisColor   = balloons.AxisColor.RGBA()
	textColor   = core.ColorDefault.RGBA()
	warnColor   = core.ColorOrange.RGBA()
	noticeColor = core.ColorBrightGreen.RGBA()
	selectColor = core.ColorBrightYellow.RGBA()
	trackColor  = balloons.TrackColor.RGBA()
	rocketColor = balloons.RocketColor.RGBA()
	cursorColor = core.ColorBrightWhite.RGBA()
)

func tierColor(t level.Tier) color.RGBA {
	return t.Color().RGBA()
}

// pixelPlane maps the plane onto the window area between the HUD and the footer.
func pixelPlane(min, max float64) balloons.Plane {
	return balloons.NewPlane(min, max, core.NewRect(0, hudHeight, ScreenWidth, ScreenHeight-hudHeight-footerHeight))
}

func drawText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	// text.Draw positions the baseline, not the top.
	text.Draw(dst, s, fontFace, x, y+fontFace.Ascent, c)
}

func drawTextCentered(dst *ebiten.Image, s string, y int, c color.Color) {
	w := len([]rune(s)) * fontFace.Advance
	drawText(dst, s, (ScreenWidth-w)/2, y, c)
}

// drawPanel draws a bordered box with centered lines and returns its top.
func drawPanel(dst *ebiten.Image, lines []string, colors map[int]color.Color) int {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l))*fontFace.Advance)
	}
	w += 48
	h := len(lines)*lineHeight + 32
	x := float32((ScreenWidth - w) / 2)
	y := float32((ScreenHeight - h) / 2)

	vector.DrawFilledRect(dst, x, y, float32(w), float32(h), panelColor, true)
	vector.StrokeRect(dst, x, y, float32(w), float32(h), 2, borderColor, true)
	for i, l := range lines {
		c, ok := colors[i]
		if !ok {
			c = textColor
		}
		drawTextCentered(dst, l, int(y)+16+i*lineHeight, c)
	}
	return int(y)
}

func drawAxes(dst *ebiten.Image, p balloons.Plane) {
	min, max := p.Min, p.Max
	for v := math.Ceil(min); v <= max; v++ {
		x0, y0 := p.ToScreenF(v, min)
		x1, y1 := p.ToScreenF(v, max)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, gridColor, false)
		x0, y0 = p.ToScreenF(min, v)
		x1, y1 = p.ToScreenF(max, v)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, gridColor, false)
	}

	ox, oy := p.ToScreenF(0, 0)
	lx, _ := p.ToScreenF(min, 0)
	rx, _ := p.ToScreenF(max, 0)
	_, ty := p.ToScreenF(0, max)
	_, by := p.ToScreenF(0, min)
	vector.StrokeLine(dst, float32(lx), float32(oy), float32(rx), float32(oy), 2, axisColor, true)
	vector.StrokeLine(dst, float32(ox), float32(ty), float32(ox), float32(by), 2, axisColor, true)

	for v := math.Ceil(min); v <= max; v += 2 {
		if v == 0 {
			continue
		}
		label := fmt.Sprintf("%g", v)
		x, y := p.ToScreenF(v, 0)
		drawText(dst, label, int(x)-len(label)*fontFace.Advance/2, int(y)+4, axisColor)
		x, y = p.ToScreenF(0, v)
		drawText(dst, label, int(x)-len(label)*fontFace.Advance-4, int(y)-fontFace.Ascent/2, axisColor)
	}
}

func drawBalloons(dst *ebiten.Image, p balloons.Plane, list []level.Balloon) {
	for _, b := range list {
		x, y := p.ToScreenF(b.X, b.Y)
		vector.DrawFilledCircle(dst, float32(x), float32(y), balloonSize, tierColor(b.Tier), true)
		vector.StrokeLine(dst, float32(x), float32(y+balloonSize), float32(x), float32(y+balloonSize*2), 1, borderColor, true)
	}
}

func drawTrack(dst *ebiten.Image, p balloons.Plane, track [][]core.Vec) {
	for _, seg := range track {
		for i := 1; i < len(seg); i++ {
			a, b := seg[i-1], seg[i]
			if !p.Contains(a.X, a.Y) && !p.Contains(b.X, b.Y) {
				continue
			}
			x0, y0 := p.ToScreenF(a.X, core.ClampF(a.Y, p.Min, p.Max))
			x1, y1 := p.ToScreenF(b.X, core.ClampF(b.Y, p.Min, p.Max))
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 2, trackColor, true)
		}
	}
}

func drawRocket(dst *ebiten.Image, p balloons.Plane, r balloons.Rocket) {
	if !r.Flying || !r.Visible || !p.Contains(r.Pos.X, r.Pos.Y) {
		return
	}
	x, y := p.ToScreenF(r.Pos.X, r.Pos.Y)
	vector.DrawFilledCircle(dst, float32(x), float32(y), 5, rocketColor, true)
}

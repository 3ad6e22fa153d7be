package game

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ball-string/internal/config"
)

// Debug font cell size.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 0x7a, G: 0x01, B: 0x16, A: 0xff}
	stringColor     = color.RGBA{R: 0x00, G: 0x01, B: 0x02, A: 0xff}
	ballColor       = color.RGBA{R: 0xb7, G: 0x67, B: 0x2e, A: 0xff}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cx := float32(g.width) / 2
	vector.DrawFilledRect(screen, cx-config.StringWidth/2, 0, config.StringWidth, float32(g.height), stringColor, false)

	const r = config.BallSize / 2
	for _, s := range g.widget.Layout() {
		vector.DrawFilledCircle(screen, cx, float32(s.Y)+r, r, ballColor, true)
	}

	if g.widget.Counting() {
		g.drawCounter(screen)
	}
}

func (g *Game) drawCounter(screen *ebiten.Image) {
	text := strconv.Itoa(g.widget.Count())
	w, h := len(text)*glyphWidth, glyphHeight
	if g.counterImg == nil || g.counterImg.Bounds().Dx() != w {
		g.counterImg = ebiten.NewImage(w, h)
	}
	g.counterImg.Clear()
	ebitenutil.DebugPrint(g.counterImg, text)

	// Scale around the centre of the resting box so the pop grows in place.
	b := g.counterBounds()
	scale := config.CounterScale * (1 + math.Max(g.popPos, -0.5))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(b.x+b.w/2, b.y+b.h/2)
	if g.popPos > 0.01 {
		r, gr, bl := hsvToRgb(45, math.Min(g.popPos, 1), 1)
		op.ColorScale.ScaleWithColor(color.RGBA{R: r, G: gr, B: bl, A: 0xff})
	}
	screen.DrawImage(g.counterImg, op)
}

// counterBounds is the counter's resting box, anchored to the top-right corner.
func (g *Game) counterBounds() rect {
	n := len(strconv.Itoa(g.widget.Count()))
	w := float64(n*glyphWidth) * config.CounterScale
	h := float64(glyphHeight) * config.CounterScale
	return rect{
		x: float64(g.width) - config.CounterInset - w,
		y: config.CounterInset,
		w: w,
		h: h,
	}
}

//go:build ebiten

package render

import (
	"image/color"

	"collatz-rain/internal/rain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Glyph cell of basicfont.Face7x13.
const (
	glyphW      = 7
	glyphH      = 13
	glyphAscent = 11
)

// Painter renders stream snapshots into a persistent offscreen image so
// trails fade gradually instead of vanishing with the next frame.
type Painter struct {
	width, height int
	cell          int
	tailRows      int
	decayExp      float64

	offscreen *ebiten.Image
	fadePx    *ebiten.Image
	glyphs    [10]*ebiten.Image
	glowSmall *ebiten.Image
	glowBig   *ebiten.Image
}

// NewPainter builds a painter for a width x height surface with the given
// cell size. trailAlpha is the per-frame fade strength; tailRows and
// decayExp shape the per-digit trail falloff.
func NewPainter(width, height, cell int, trailAlpha uint8, tailRows int, decayExp float64) *Painter {
	p := &Painter{
		width:    width,
		height:   height,
		cell:     cell,
		tailRows: tailRows,
		decayExp: decayExp,
	}

	p.offscreen = ebiten.NewImage(width, height)
	p.offscreen.Fill(color.Black)

	p.fadePx = ebiten.NewImage(1, 1)
	p.fadePx.Fill(color.RGBA{0, 0, 0, trailAlpha})

	for d := 0; d < 10; d++ {
		img := ebiten.NewImage(glyphW, glyphH)
		text.Draw(img, string(rune('0'+d)), basicfont.Face7x13, 0, glyphAscent, color.White)
		p.glyphs[d] = img
	}

	p.glowSmall = newGlowImage(int(float64(cell) * 0.7))
	p.glowBig = newGlowImage(int(float64(cell) * 1.2))
	return p
}

func newGlowImage(radius int) *ebiten.Image {
	if radius < 2 {
		radius = 2
	}
	size := 2 * radius
	buf := make([]byte, 4*size*size)
	glowRGBA(buf, radius, 80, 255, 100)
	img := ebiten.NewImage(size, size)
	img.WritePixels(buf)
	return img
}

// Clear resets the trail surface to black.
func (p *Painter) Clear() {
	p.offscreen.Fill(color.Black)
}

// BeginFrame applies the per-frame fade pass that leaves soft tails behind
// the falling digits.
func (p *Painter) BeginFrame() {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.width), float64(p.height))
	p.offscreen.DrawImage(p.fadePx, op)
}

// DrawStream paints one snapshot onto the trail surface: an additive glow
// halo plus the digit glyph per visible character, brightness rising toward
// the bottom and the trail decaying behind the head.
func (p *Painter) DrawStream(s rain.Snapshot) error {
	cell := float64(p.cell)
	headY := s.HeadRow * cell
	x := float64(s.Column) * cell

	for i, ch := range s.Visible {
		y := headY - float64(i)*cell
		if y < -cell {
			continue
		}
		if y > float64(p.height) {
			break
		}
		if ch < '0' || ch > '9' {
			continue
		}

		m := rain.Brightness(y, float64(p.height))
		d := rain.Decay(i, p.tailRows, p.decayExp)
		a := m * d
		if a <= 0 {
			continue
		}

		glow := p.glowSmall
		glowA := 0.35 * a
		if i == 0 {
			glow = p.glowBig
			glowA = 0.63 * m
		}
		gw, gh := glow.Bounds().Dx(), glow.Bounds().Dy()
		gop := &ebiten.DrawImageOptions{}
		gop.GeoM.Translate(x+cell/2-float64(gw)/2, y+cell/2-float64(gh)/2)
		gop.ColorScale.ScaleAlpha(float32(glowA))
		gop.Blend = ebiten.BlendLighter
		p.offscreen.DrawImage(glow, gop)

		// Head glyph near white, trail in the classic green.
		var r, g, b float64
		if i == 0 {
			r, g, b = 0.86*m, m, 0.86*m
		} else {
			r, g, b = 0, m, 0.25*m
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cell/glyphW, cell/glyphH)
		op.GeoM.Translate(x, y)
		op.ColorScale.Scale(float32(r*a), float32(g*a), float32(b*a), float32(a))
		p.offscreen.DrawImage(p.glyphs[ch-'0'], op)
	}
	return nil
}

// Compose draws the trail surface onto dst, scaled by the global fade-in
// alpha.
func (p *Painter) Compose(dst *ebiten.Image, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(p.offscreen, op)
}

//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding  = 6
	hudLineStep = 14
)

// HUD draws a small status panel in the top-left corner. F1 toggles it.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &HUD{visible: true, pixel: pixel}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.visible = !h.visible
	}
}

// Draw renders the panel for the given field stats.
func (h *HUD) Draw(screen *ebiten.Image, stats Stats) {
	if !h.visible || stats == nil {
		return
	}

	lines := []string{
		fmt.Sprintf("%s  streams %d/%d  cols %d", stats.Mode(), stats.Active(), stats.Target(), stats.Cols()),
		fmt.Sprintf("speed x%.1f  tps %.0f  fps %.0f", stats.SpeedScale(), ebiten.ActualTPS(), ebiten.ActualFPS()),
		"space pause  n step  r reset  s reseed  [ ] speed  f1 hide  q quit",
	}

	width := 0
	for _, line := range lines {
		if w := len(line) * glyphAdvance; w > width {
			width = w
		}
	}

	bg := &ebiten.DrawImageOptions{}
	bg.GeoM.Scale(float64(width+2*hudPadding), float64(len(lines)*hudLineStep+2*hudPadding))
	bg.ColorScale.Scale(0, 0, 0, 0.65)
	screen.DrawImage(h.pixel, bg)

	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineStep - 3
		text.Draw(screen, line, basicfont.Face7x13, hudPadding, y, color.RGBA{160, 255, 160, 255})
	}
}

// glyphAdvance is the fixed advance of basicfont.Face7x13.
const glyphAdvance = 7

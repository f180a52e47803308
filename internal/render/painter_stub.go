//go:build !ebiten

package render

// Painter is a placeholder so headless builds can share the app API. The
// real implementation requires the ebiten build tag.
type Painter struct{}

// NewPainter panics to indicate that the ebiten build tag is required.
func NewPainter(width, height, cell int, trailAlpha uint8, tailRows int, decayExp float64) *Painter {
	panic("render.NewPainter requires building with the 'ebiten' tag")
}

// Clear is a no-op placeholder.
func (p *Painter) Clear() {}

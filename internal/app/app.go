//go:build ebiten

package app

import (
	"time"

	"collatz-rain/internal/core"
	"collatz-rain/internal/rain"
	"collatz-rain/internal/render"
	"collatz-rain/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeInSecs is how long the scene takes to fade up from black after a
// start or reset.
const fadeInSecs = 1.5

// Game adapts the rain field to the ebiten.Game interface.
type Game struct {
	cfg     rain.Config
	field   *rain.Field
	painter *render.Painter
	hud     *ui.HUD
	clock   *core.FrameClock

	fadeIn    *gween.Tween
	fadeAlpha float32

	paused   bool
	tickOnce bool
	seed     int64
	err      error
}

// New constructs a Game for the provided, already validated engine config.
func New(cfg rain.Config, painter *render.Painter, seed int64) *Game {
	g := &Game{
		cfg:     cfg,
		painter: painter,
		hud:     ui.NewHUD(),
		seed:    seed,
	}
	g.Reset(seed)
	return g
}

// Reset rebuilds the field with the provided seed and restarts the clock
// and the fade-in.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.field, g.err = rain.New(g.cfg, core.NewRNG(seed), g.painter)
	if g.err != nil {
		return
	}
	g.field.Reset(0)
	g.clock = core.NewFrameClock()
	g.fadeIn = gween.New(0, 1, fadeInSecs, ease.OutQuad)
	g.fadeAlpha = 0
	g.painter.Clear()
	g.paused = false
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.field.SetSpeedScale(g.field.SpeedScale() - 0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.field.SetSpeedScale(g.field.SpeedScale() + 0.1)
	}

	g.hud.Update()

	dt, nowMS := g.clock.Tick()
	g.fadeAlpha, _ = g.fadeIn.Update(float32(dt))

	if g.paused && !g.tickOnce {
		return nil
	}
	g.tickOnce = false

	g.painter.BeginFrame()
	return g.field.Tick(dt, nowMS)
}

// Draw composes the persistent trail surface onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Compose(screen, g.fadeAlpha)
	g.hud.Draw(screen, g.field)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

func NewHUD() *HUD { return &HUD{} }

func (h *HUD) Update() {}

func (h *HUD) Draw(_ any, _ Stats) {}

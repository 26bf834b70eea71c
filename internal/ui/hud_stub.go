//go:build !ebiten

package ui

import "rewind-ca/internal/history"

// Height is zero in headless builds.
const Height = 0

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns a stub HUD.
func NewHUD(int) *HUD { return &HUD{} }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, *history.Buffer, bool) {}

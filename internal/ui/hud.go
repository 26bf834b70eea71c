//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"rewind-ca/internal/history"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a status bar along the bottom edge of the window.
type HUD struct {
	height int
	bar    *ebiten.Image
	barW   int
}

// Height is the vertical space the HUD occupies, in screen pixels.
const Height = 16

// NewHUD constructs a HUD sized to the given screen width.
func NewHUD(screenW int) *HUD {
	h := &HUD{height: Height, barW: screenW}
	if screenW > 0 {
		h.bar = ebiten.NewImage(screenW, Height)
	}
	return h
}

// Draw paints the status bar under the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, buf *history.Buffer, playing bool) {
	if h.bar == nil {
		return
	}
	h.bar.Fill(color.RGBA{R: 24, G: 24, B: 24, A: 255})

	snap := buf.Current()
	mode := "PAUSED"
	if playing {
		mode = "PLAY"
	}
	status := fmt.Sprintf("gen %d  ·  snapshot %d/%d  ·  alive %d  ·  %s",
		snap.Gen, buf.Cursor()+1, buf.Len(), snap.Grid.Population(), mode)
	text.Draw(h.bar, status, basicfont.Face7x13, 4, h.height-4, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(screen.Bounds().Dy()-h.height))
	screen.DrawImage(h.bar, op)
}

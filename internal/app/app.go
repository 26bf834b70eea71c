//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"rewind-ca/internal/core"
	"rewind-ca/internal/history"
	"rewind-ca/internal/life"
	"rewind-ca/internal/render"
	"rewind-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the history buffer and rule engine to the ebiten.Game
// interface. It owns the buffer exclusively; rendering only ever reads the
// snapshot under the cursor for the duration of one draw.
type Game struct {
	hist    *history.Buffer
	engine  *life.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep

	cfg     *Config
	playing bool
}

// New constructs a Game around a seeded history buffer.
func New(hist *history.Buffer, engine *life.Engine, cfg *Config) *Game {
	g := &Game{
		hist:    hist,
		engine:  engine,
		painter: render.NewGridPainter(cfg.Width, cfg.Height),
		hud:     ui.NewHUD(cfg.Width * cfg.Scale),
		clock:   core.NewFixedStep(cfg.TPS),
		cfg:     cfg,
	}
	return g
}

func (g *Game) step(grid *core.Grid) *core.Grid {
	return life.Step(grid, g.engine)
}

// Reset reseeds generation zero and discards all recorded history.
func (g *Game) Reset(seed int64) error {
	grid, err := life.Seed(g.cfg.SeedConfig(), core.NewRNG(seed))
	if err != nil {
		return err
	}
	hist, err := history.New(history.Snapshot{Gen: 0, Grid: grid}, g.cfg.Capacity)
	if err != nil {
		return err
	}
	g.hist = hist
	g.playing = false
	return nil
}

// Update handles input and advances the simulation while playing.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
		g.applyTitle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
		g.applyTitle()
	}

	// Arrow navigation is accepted only while paused, so replay cannot race
	// the automatic frontier advance.
	if !g.playing {
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
			g.hist.StepForward(g.step)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
			g.hist.StepBackward()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
			g.hist.JumpToStart()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
			g.hist.JumpToEnd()
		}
	}

	if g.playing && g.clock.ShouldStep() {
		g.hist.StepForward(g.step)
	}
	return nil
}

func (g *Game) applyTitle() {
	mode := "PAUSED"
	if g.playing {
		mode = "PLAY"
	}
	ebiten.SetWindowTitle(fmt.Sprintf("cells — %s", mode))
}

// Draw renders the snapshot under the cursor plus the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.hist.Current().Grid, color.Black, color.White, g.cfg.Scale)
	g.hud.Draw(screen, g.hist, g.playing)
}

// Layout returns the logical screen size: the scaled grid plus the HUD bar.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.cfg.Scale, g.cfg.Height*g.cfg.Scale + ui.Height
}

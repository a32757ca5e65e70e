//go:build ebiten

package app

import (
	"time"

	"pipemaze/internal/core"
	"pipemaze/internal/render"
	"pipemaze/internal/ui"
	"pipemaze/internal/wfc"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

type viewProvider interface {
	View() wfc.View
}

// Game adapts a pipe generator to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	view    viewProvider
	painter *render.TilePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	perFrame int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The sim must expose
// its candidate grid through a View method.
func New(sim core.Sim, scale, perFrame int, seed int64) *Game {
	view, ok := sim.(viewProvider)
	if !ok {
		panic("app.New: sim " + sim.Name() + " does not expose a grid view")
	}
	if perFrame <= 0 {
		perFrame = 1
	}
	size := sim.Size()
	return &Game{
		sim:      sim,
		view:     view,
		painter:  render.NewTilePainter(size.W, size.H, render.DefaultPalette()),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, scale*render.CellPixels),
		scale:    scale,
		perFrame: perFrame,
		seed:     seed,
	}
}

// Reset reinitializes the generator with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the generator.
func (g *Game) Update() error {
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
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.finish()
	}

	g.overlay.Update()
	g.hud.Update()

	if !g.paused {
		for i := 0; i < g.perFrame; i++ {
			g.sim.Step()
		}
	} else if g.tickOnce {
		g.sim.Step()
	}
	g.tickOnce = false
	return nil
}

// finish steps until the generator stops.
func (g *Game) finish() {
	f, ok := g.sim.(core.Finisher)
	if !ok {
		return
	}
	for !f.Done() && f.Err() == nil {
		g.sim.Step()
	}
}

// Draw renders the current grid.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.view.View(), g.scale)
	g.overlay.Draw(screen)
	pw, _ := g.painter.Size()
	g.hud.Draw(screen, pw*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	pw, ph := g.painter.Size()
	return pw*g.scale + hudWidth, ph * g.scale
}

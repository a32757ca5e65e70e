//go:build ebiten

package ui

import (
	"errors"
	"image/color"

	"pipemaze/internal/core"
	"pipemaze/internal/wfc"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type lastStepProvider interface {
	LastStep() wfc.Step
	Steps() int
}

// Overlay marks the last collapsed cell and any contradiction on top of the
// grid.
type Overlay struct {
	sim      core.Sim
	cellSize int
	showLast bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay. cellSize is the on-screen edge length
// of one grid cell.
func NewOverlay(sim core.Sim, cellSize int) *Overlay {
	o := &Overlay{sim: sim, cellSize: cellSize, showLast: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showLast = !o.showLast
	}
}

// Draw paints the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showLast {
		if p, ok := o.sim.(lastStepProvider); ok && p.Steps() > 0 {
			s := p.LastStep()
			o.outline(screen, s.Row, s.Col, color.RGBA{R: 80, G: 200, B: 255, A: 255})
		}
	}
	if f, ok := o.sim.(core.Finisher); ok {
		var ce *wfc.ContradictionError
		if errors.As(f.Err(), &ce) {
			o.outline(screen, ce.Row, ce.Col, color.RGBA{R: 255, G: 40, B: 40, A: 255})
		}
	}
}

func (o *Overlay) outline(screen *ebiten.Image, row, col int, clr color.Color) {
	x := float64(col * o.cellSize)
	y := float64(row * o.cellSize)
	s := float64(o.cellSize)
	o.rect(screen, x, y, s, 1, clr)
	o.rect(screen, x, y+s-1, s, 1, clr)
	o.rect(screen, x, y, 1, s, clr)
	o.rect(screen, x+s-1, y, 1, s, clr)
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(o.pixel, op)
}

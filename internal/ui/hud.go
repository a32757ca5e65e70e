//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"pipemaze/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

// HUD renders the parameter panel to the right of the grid view.
type HUD struct {
	sim      core.Sim
	width    int
	snapshot core.ParameterSnapshot
	status   string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the cached parameter snapshot and run status.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	h.status = "RUNNING"
	if f, ok := h.sim.(core.Finisher); ok {
		switch {
		case f.Err() != nil:
			h.status = "CONTRADICTION"
		case f.Done():
			h.status = "DONE"
		}
	}
}

// Draw paints the HUD panel starting at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), float64(height))
	op.GeoM.Translate(float64(offsetX), 0)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 18, B: 24, A: 255})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	x := offsetX + hudPadding
	y := hudPadding + hudLineHeight
	text.Draw(screen, h.sim.Name()+"  "+h.status, face, x, y, color.White)
	y += hudLineHeight

	for _, group := range h.snapshot.Groups {
		y += hudLineHeight / 2
		text.Draw(screen, group.Name, face, x, y, color.RGBA{R: 150, G: 190, B: 255, A: 255})
		y += hudLineHeight
		for _, p := range group.Params {
			text.Draw(screen, fmt.Sprintf("%-10s %s", p.Label, p.Value), face, x, y, color.White)
			y += hudLineHeight
		}
	}

	y += hudLineHeight / 2
	for _, line := range []string{"SPACE pause", "N step", "F finish", "R reset", "S new seed", "1 last cell", "Q quit"} {
		text.Draw(screen, line, face, x, y, color.Gray{Y: 150})
		y += hudLineHeight
	}
}

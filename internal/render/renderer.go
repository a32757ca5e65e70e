//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pipemaze/internal/wfc"
)

// TilePainter keeps one RGBA image of a grid, CellPixels per cell side.
type TilePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	pal  Palette
}

// NewTilePainter allocates a painter for a grid of w*h cells.
func NewTilePainter(w, h int, pal Palette) *TilePainter {
	pw, ph := w*CellPixels, h*CellPixels
	tp := &TilePainter{w: w, h: h, buf: make([]byte, 4*pw*ph), pal: pal}
	tp.img = ebiten.NewImage(pw, ph)
	return tp
}

// Blit uploads the grid into the painter image and draws it scaled.
func (tp *TilePainter) Blit(dst *ebiten.Image, v wfc.View, scale int) {
	if v.Width() != tp.w || v.Height() != tp.h {
		return
	}
	fillTileRGBA(tp.buf, v, tp.pal)
	tp.img.WritePixels(tp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.img, op)
}

// Size returns the dimensions of the underlying image in pixels.
func (tp *TilePainter) Size() (int, int) { return tp.w * CellPixels, tp.h * CellPixels }

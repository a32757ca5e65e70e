package render

import (
	"image/color"

	"pipemaze/internal/tiles"
	"pipemaze/internal/wfc"
)

// CellPixels is the edge length of the square stencil drawn per cell.
const CellPixels = 3

// Palette holds the colors used to rasterize a grid.
type Palette struct {
	Pipe          color.RGBA
	Ground        color.RGBA
	Contradiction color.RGBA
}

// DefaultPalette returns the standard colors.
func DefaultPalette() Palette {
	return Palette{
		Pipe:          color.RGBA{R: 220, G: 220, B: 220, A: 255},
		Ground:        color.RGBA{R: 20, G: 24, B: 32, A: 255},
		Contradiction: color.RGBA{R: 255, G: 0, B: 0, A: 255},
	}
}

// stencil reports whether pixel (px, py) of a cell belongs to the pipe.
func stencil(v tiles.Variant, px, py int) bool {
	switch {
	case px == 1 && py == 1:
		return v.Connectors() > 0
	case px == 1 && py == 0:
		return v.North
	case px == 1 && py == 2:
		return v.South
	case px == 2 && py == 1:
		return v.East
	case px == 0 && py == 1:
		return v.West
	}
	return false
}

// entropyShade maps an undecided candidate count to a grey; more options
// are brighter.
func entropyShade(count int) color.RGBA {
	v := 40 + int(float64(count-2)/float64(tiles.Count-2)*160.0)
	if v < 40 {
		v = 40
	}
	if v > 200 {
		v = 200
	}
	return color.RGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: 255}
}

// fillTileRGBA rasterizes the grid into buf, which must hold
// 4*(W*CellPixels)*(H*CellPixels) bytes.
func fillTileRGBA(buf []byte, v wfc.View, pal Palette) {
	stride := v.Width() * CellPixels
	for r := 0; r < v.Height(); r++ {
		for c := 0; c < v.Width(); c++ {
			count := v.Count(r, c)
			sole, collapsed := v.Sole(r, c)
			for py := 0; py < CellPixels; py++ {
				for px := 0; px < CellPixels; px++ {
					var col color.RGBA
					switch {
					case count == 0:
						col = pal.Contradiction
					case !collapsed:
						col = entropyShade(count)
					case stencil(sole, px, py):
						col = pal.Pipe
					default:
						col = pal.Ground
					}
					base := ((r*CellPixels+py)*stride + c*CellPixels + px) * 4
					buf[base+0] = col.R
					buf[base+1] = col.G
					buf[base+2] = col.B
					buf[base+3] = col.A
				}
			}
		}
	}
}

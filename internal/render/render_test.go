package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipemaze/internal/tiles"
	"pipemaze/internal/wfc"
)

func TestTextUndecidedIsBlank(t *testing.T) {
	g, err := wfc.NewGrid(4, 2)
	require.NoError(t, err)
	assert.Equal(t, "    \n    \n", Text(g))
}

func TestTextCollapsedUsesGlyphs(t *testing.T) {
	g, err := wfc.NewGrid(3, 1)
	require.NoError(t, err)
	all := tiles.All()
	g.Set(0, 0, wfc.Candidates{all[2]})
	g.Set(0, 2, wfc.Candidates{all[1]})
	assert.Equal(t, "┌ ┐\n", Text(g))
	assert.Equal(t, ". .\n", TextWith(g, ASCIIGlyphs))
}

func TestWriteTextMatchesText(t *testing.T) {
	e, err := wfc.New(20, 6, wfc.Options{Seed: 9})
	require.NoError(t, err)
	_, err = e.Run(context.Background(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, e.Grid(), tiles.Glyphs))
	assert.Equal(t, Text(e.Grid()), buf.String())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, 20, len([]rune(l)))
	}
}

func TestFillTileRGBA(t *testing.T) {
	g, err := wfc.NewGrid(2, 1)
	require.NoError(t, err)
	cross, _ := tiles.ByIndex(10)
	g.Set(0, 0, wfc.Candidates{cross})
	g.Set(0, 1, tiles.All()[:4])

	pal := DefaultPalette()
	stride := 2 * CellPixels
	buf := make([]byte, 4*stride*CellPixels)
	fillTileRGBA(buf, g, pal)

	at := func(x, y int) []byte {
		base := (y*stride + x) * 4
		return buf[base : base+4]
	}
	pipe := []byte{pal.Pipe.R, pal.Pipe.G, pal.Pipe.B, pal.Pipe.A}
	ground := []byte{pal.Ground.R, pal.Ground.G, pal.Ground.B, pal.Ground.A}

	assert.Equal(t, pipe, at(1, 1))
	assert.Equal(t, pipe, at(1, 0))
	assert.Equal(t, pipe, at(0, 1))
	assert.Equal(t, ground, at(0, 0))

	shade := entropyShade(4)
	assert.Equal(t, []byte{shade.R, shade.G, shade.B, 255}, at(4, 1))
}

func TestEntropyShadeMonotonic(t *testing.T) {
	prev := entropyShade(2).R
	for n := 3; n <= tiles.Count; n++ {
		cur := entropyShade(n).R
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

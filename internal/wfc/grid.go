package wfc

import (
	"fmt"

	"pipemaze/internal/tiles"
)

// Candidates is the ordered set of variants still possible for a cell.
type Candidates []tiles.Variant

// View is read-only access to a grid for renderers and analysis.
type View interface {
	Width() int
	Height() int
	Count(row, col int) int
	Sole(row, col int) (tiles.Variant, bool)
}

// Grid stores one candidate set per cell in row-major order.
type Grid struct {
	w, h  int
	cells []Candidates
}

// NewGrid allocates a grid where every cell holds the full catalog.
func NewGrid(w, h int) (*Grid, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	g := &Grid{w: w, h: h, cells: make([]Candidates, w*h)}
	g.Fill()
	return g, nil
}

// Fill resets every cell to the full catalog.
func (g *Grid) Fill() {
	for i := range g.cells {
		g.cells[i] = tiles.All()
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.w + col }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// Count returns the candidate-set size of a cell (its entropy).
func (g *Grid) Count(row, col int) int {
	return len(g.cells[g.Index(row, col)])
}

// Candidates returns a copy of the candidate set of a cell.
func (g *Grid) Candidates(row, col int) Candidates {
	c := g.cells[g.Index(row, col)]
	out := make(Candidates, len(c))
	copy(out, c)
	return out
}

// Set replaces the candidate set of a cell with a copy of c.
func (g *Grid) Set(row, col int, c Candidates) {
	cp := make(Candidates, len(c))
	copy(cp, c)
	g.cells[g.Index(row, col)] = cp
}

// Sole returns the only candidate of a collapsed cell.
func (g *Grid) Sole(row, col int) (tiles.Variant, bool) {
	c := g.cells[g.Index(row, col)]
	if len(c) != 1 {
		return tiles.Variant{}, false
	}
	return c[0], true
}

// Done reports whether every cell holds exactly one candidate.
func (g *Grid) Done() bool {
	for _, c := range g.cells {
		if len(c) != 1 {
			return false
		}
	}
	return true
}

// Collapsed counts the cells holding exactly one candidate.
func (g *Grid) Collapsed() int {
	n := 0
	for _, c := range g.cells {
		if len(c) == 1 {
			n++
		}
	}
	return n
}

// Remaining is the sum over all cells of max(0, count-1). It strictly
// decreases with every successful collapse.
func (g *Grid) Remaining() int {
	n := 0
	for _, c := range g.cells {
		if len(c) > 1 {
			n += len(c) - 1
		}
	}
	return n
}

// FilterBoundary drops candidates with a connector pointing off the grid and
// returns the number left. Applying it again is a no-op.
func (g *Grid) FilterBoundary(row, col int) int {
	i := g.Index(row, col)
	g.cells[i] = filter(g.cells[i], func(v tiles.Variant) bool {
		return !(row == 0 && v.North) &&
			!(row == g.h-1 && v.South) &&
			!(col == 0 && v.West) &&
			!(col == g.w-1 && v.East)
	})
	return len(g.cells[i])
}

// filter copies the candidates matching pred into a new slice.
func filter(c Candidates, pred func(tiles.Variant) bool) Candidates {
	out := make(Candidates, 0, len(c))
	for _, v := range c {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

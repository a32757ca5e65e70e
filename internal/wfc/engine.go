package wfc

import (
	"context"
	"fmt"

	"pipemaze/internal/tiles"
	"pipemaze/pkg/core"
)

// Rand is the entropy source the engine draws from.
type Rand interface {
	IntN(n int) int
}

// Options configures an Engine. Nil sources are derived from Seed.
type Options struct {
	Seed         int64
	SelectRand   Rand
	CollapseRand Rand
	// Cascade keeps propagating past the direct neighbors until no
	// candidate set changes.
	Cascade bool
}

const (
	selectStream   = 1
	collapseStream = 2
)

// Step records one collapse.
type Step struct {
	N       int
	Row     int
	Col     int
	Variant tiles.Variant
}

// Stats summarises a finished run.
type Stats struct {
	Steps int
	Cells int
}

// Observer receives the grid after every step.
type Observer func(step Step, view View)

// Engine drives a grid from fully undecided to fully collapsed.
type Engine struct {
	grid     *Grid
	selRand  Rand
	colRand  Rand
	cascade  bool
	steps    int
	lastStep Step
}

// New allocates a w*h grid and an engine owning it.
func New(w, h int, opts Options) (*Engine, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return NewWithGrid(g, opts), nil
}

// NewWithGrid wraps an existing grid. The engine takes ownership of g.
func NewWithGrid(g *Grid, opts Options) *Engine {
	e := &Engine{grid: g, cascade: opts.Cascade}
	e.selRand = opts.SelectRand
	if e.selRand == nil {
		e.selRand = core.NewStream(opts.Seed, selectStream)
	}
	e.colRand = opts.CollapseRand
	if e.colRand == nil {
		e.colRand = core.NewStream(opts.Seed, collapseStream)
	}
	return e
}

// Grid exposes the owned grid.
func (e *Engine) Grid() *Grid { return e.grid }

// Steps returns the number of collapses performed since the last reset.
func (e *Engine) Steps() int { return e.steps }

// LastStep returns the most recent collapse.
func (e *Engine) LastStep() Step { return e.lastStep }

// Reset refills the grid and reseeds both entropy sources.
func (e *Engine) Reset(seed int64) {
	e.grid.Fill()
	e.selRand = core.NewStream(seed, selectStream)
	e.colRand = core.NewStream(seed, collapseStream)
	e.steps = 0
	e.lastStep = Step{}
}

// Done reports whether every cell is collapsed.
func (e *Engine) Done() bool { return e.grid.Done() }

// SelectCell returns an undecided cell of minimum entropy, breaking ties
// uniformly at random.
func (e *Engine) SelectCell() (int, int, error) {
	g := e.grid
	best := 0
	var ties []int
	for i, c := range g.cells {
		n := len(c)
		if n == 0 {
			return 0, 0, &ContradictionError{Row: i / g.w, Col: i % g.w, Phase: PhaseSelect}
		}
		if n == 1 {
			continue
		}
		switch {
		case best == 0 || n < best:
			best = n
			ties = append(ties[:0], i)
		case n == best:
			ties = append(ties, i)
		}
	}
	if len(ties) == 0 {
		return 0, 0, ErrNoUndecidedCell
	}
	i := ties[e.selRand.IntN(len(ties))]
	return i / g.w, i % g.w, nil
}

// CollapseCell applies the boundary filter to (row, col), fixes it to one of
// the remaining candidates and returns that variant.
func (e *Engine) CollapseCell(row, col int) (tiles.Variant, error) {
	g := e.grid
	if !g.InBounds(row, col) {
		return tiles.Variant{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	n := g.FilterBoundary(row, col)
	if n == 0 {
		return tiles.Variant{}, &ContradictionError{Row: row, Col: col, Phase: PhaseBoundary}
	}
	i := g.Index(row, col)
	chosen := g.cells[i][e.colRand.IntN(n)]
	g.cells[i] = Candidates{chosen}
	return chosen, nil
}

// Propagate restricts each undecided direct neighbor of (row, col) to the
// candidates whose facing connector matches chosen. Collapsed neighbors are
// left alone.
func (e *Engine) Propagate(row, col int, chosen tiles.Variant) error {
	changed, err := e.restrictNeighbors(row, col, Candidates{chosen})
	if err != nil {
		return err
	}
	if e.cascade {
		return e.cascadeFrom(changed)
	}
	return nil
}

// restrictNeighbors filters the neighbors of (row, col) against source and
// returns the linear indices of the ones that shrank. On a contradiction no
// neighbor is written.
func (e *Engine) restrictNeighbors(row, col int, source Candidates) ([]int, error) {
	g := e.grid
	type update struct {
		idx   int
		after Candidates
	}
	var updates []update
	for _, d := range tiles.Dirs {
		dr, dc := d.Offset()
		nr, nc := row+dr, col+dc
		if !g.InBounds(nr, nc) {
			continue
		}
		ni := g.Index(nr, nc)
		before := g.cells[ni]
		if len(before) <= 1 {
			continue
		}
		facing := d.Opposite()
		after := filter(before, func(v tiles.Variant) bool {
			for _, s := range source {
				if v.Opens(facing) == s.Opens(d) {
					return true
				}
			}
			return false
		})
		if len(after) == 0 {
			return nil, &ContradictionError{Row: nr, Col: nc, Phase: PhasePropagate}
		}
		if len(after) != len(before) {
			updates = append(updates, update{idx: ni, after: after})
		}
	}
	changed := make([]int, 0, len(updates))
	for _, u := range updates {
		g.cells[u.idx] = u.after
		changed = append(changed, u.idx)
	}
	return changed, nil
}

// Step selects, collapses and propagates once.
func (e *Engine) Step() (Step, error) {
	row, col, err := e.SelectCell()
	if err != nil {
		return Step{}, err
	}
	chosen, err := e.CollapseCell(row, col)
	if err != nil {
		return Step{}, err
	}
	if err := e.Propagate(row, col, chosen); err != nil {
		return Step{}, err
	}
	e.steps++
	e.lastStep = Step{N: e.steps, Row: row, Col: col, Variant: chosen}
	return e.lastStep, nil
}

// Run steps until the grid is collapsed, calling obs after every step when
// it is non-nil. It stops at the first error.
func (e *Engine) Run(ctx context.Context, obs Observer) (Stats, error) {
	for !e.grid.Done() {
		if err := ctx.Err(); err != nil {
			return e.stats(), err
		}
		step, err := e.Step()
		if err != nil {
			return e.stats(), err
		}
		if obs != nil {
			obs(step, e.grid)
		}
	}
	return e.stats(), nil
}

func (e *Engine) stats() Stats {
	return Stats{Steps: e.steps, Cells: e.grid.w * e.grid.h}
}

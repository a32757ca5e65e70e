// Package network inspects a fully collapsed grid as a set of pipe networks.
package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spakin/disjoint"

	"pipemaze/internal/tiles"
	"pipemaze/internal/wfc"
)

var (
	ErrIncomplete = errors.New("network: grid is not fully collapsed")
	ErrDangling   = errors.New("network: connector has no matching neighbor")
)

// Report summarises the pipe networks of a collapsed grid.
type Report struct {
	Cells     int
	Empty     int   // cells with no connector
	DeadEnds  int   // cells with exactly one connector
	Junctions int   // cells with three or four connectors
	Sizes     []int // cells per network, largest first
}

// Networks is the number of distinct connected pipe networks.
func (r Report) Networks() int { return len(r.Sizes) }

// Largest is the size of the biggest network, or zero.
func (r Report) Largest() int {
	if len(r.Sizes) == 0 {
		return 0
	}
	return r.Sizes[0]
}

// Validate checks that every open connector meets an open connector on the
// neighboring cell and that none points off the grid.
func Validate(v wfc.View) error {
	for r := 0; r < v.Height(); r++ {
		for c := 0; c < v.Width(); c++ {
			t, ok := v.Sole(r, c)
			if !ok {
				return fmt.Errorf("%w: (%d,%d) holds %d candidates", ErrIncomplete, r, c, v.Count(r, c))
			}
			for _, d := range tiles.Dirs {
				dr, dc := d.Offset()
				nr, nc := r+dr, c+dc
				if nr < 0 || nr >= v.Height() || nc < 0 || nc >= v.Width() {
					if t.Opens(d) {
						return fmt.Errorf("%w: (%d,%d) opens %s off the grid", ErrDangling, r, c, d)
					}
					continue
				}
				n, ok := v.Sole(nr, nc)
				if !ok {
					continue
				}
				if t.Opens(d) != n.Opens(d.Opposite()) {
					return fmt.Errorf("%w: (%d,%d) %s meets (%d,%d)", ErrDangling, r, c, d, nr, nc)
				}
			}
		}
	}
	return nil
}

// Analyze validates v and groups connected pipe cells into networks.
func Analyze(v wfc.View) (Report, error) {
	if err := Validate(v); err != nil {
		return Report{}, err
	}
	w, h := v.Width(), v.Height()
	rep := Report{Cells: w * h}
	elems := make([]*disjoint.Element, w*h)
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			t, _ := v.Sole(r, c)
			switch n := t.Connectors(); {
			case n == 0:
				rep.Empty++
			case n == 1:
				rep.DeadEnds++
			case n >= 3:
				rep.Junctions++
			}
			// Validate guarantees the neighbor opens back.
			if t.East {
				disjoint.Union(elems[r*w+c], elems[r*w+c+1])
			}
			if t.South {
				disjoint.Union(elems[r*w+c], elems[(r+1)*w+c])
			}
		}
	}

	sizes := map[*disjoint.Element]int{}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			t, _ := v.Sole(r, c)
			if t.Connectors() == 0 {
				continue
			}
			sizes[elems[r*w+c].Find()]++
		}
	}
	for _, n := range sizes {
		rep.Sizes = append(rep.Sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rep.Sizes)))
	return rep, nil
}

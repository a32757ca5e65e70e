package wfc

import "github.com/zyedidia/generic/mapset"

// cascadeFrom keeps re-filtering neighbors of every shrunk cell until the
// grid is stable.
func (e *Engine) cascadeFrom(start []int) error {
	g := e.grid
	queue := append([]int(nil), start...)
	pending := mapset.New[int]()
	for _, i := range queue {
		pending.Put(i)
	}
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		pending.Remove(i)
		changed, err := e.restrictNeighbors(i/g.w, i%g.w, g.cells[i])
		if err != nil {
			return err
		}
		for _, ni := range changed {
			if pending.Has(ni) {
				continue
			}
			pending.Put(ni)
			queue = append(queue, ni)
		}
	}
	return nil
}

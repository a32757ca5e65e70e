// Package tiles defines the closed catalog of pipe tile variants.
package tiles

// Dir names one side of a cell.
type Dir uint8

const (
	North Dir = iota
	South
	East
	West
)

// Dirs lists the four sides in a stable order.
var Dirs = [4]Dir{North, South, East, West}

// Opposite returns the side facing d across a shared edge.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Offset returns the row/col delta of the neighbor on side d.
func (d Dir) Offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Dir) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Variant is a tile with an open connector on each flagged side.
type Variant struct {
	Index int
	North bool
	South bool
	East  bool
	West  bool
}

// Count is the number of variants in the catalog.
const Count = 16

// Glyphs maps Variant.Index to its box-drawing rune.
var Glyphs = [Count]rune{
	'┘', '┐', '┌', '└', '┤', '┴', '┬', '├', '─', '│', '┼', ' ', '╷', '╶', '╴', '╵',
}

var catalog = [Count]Variant{
	{Index: 0, North: true, West: true},
	{Index: 1, South: true, West: true},
	{Index: 2, South: true, East: true},
	{Index: 3, North: true, East: true},
	{Index: 4, North: true, South: true, West: true},
	{Index: 5, North: true, East: true, West: true},
	{Index: 6, South: true, East: true, West: true},
	{Index: 7, North: true, South: true, East: true},
	{Index: 8, East: true, West: true},
	{Index: 9, North: true, South: true},
	{Index: 10, North: true, South: true, East: true, West: true},
	{Index: 11},
	{Index: 12, South: true},
	{Index: 13, East: true},
	{Index: 14, West: true},
	{Index: 15, North: true},
}

// All returns the sixteen variants in index order. The slice is a fresh copy.
func All() []Variant {
	out := make([]Variant, Count)
	copy(out, catalog[:])
	return out
}

// ByIndex returns the variant with the given index.
func ByIndex(i int) (Variant, bool) {
	if i < 0 || i >= Count {
		return Variant{}, false
	}
	return catalog[i], true
}

// Opens reports whether v has a connector on side d.
func (v Variant) Opens(d Dir) bool {
	switch d {
	case North:
		return v.North
	case South:
		return v.South
	case East:
		return v.East
	case West:
		return v.West
	default:
		return false
	}
}

// Connectors counts the open sides.
func (v Variant) Connectors() int {
	n := 0
	for _, d := range Dirs {
		if v.Opens(d) {
			n++
		}
	}
	return n
}

// Glyph returns the display rune for v.
func (v Variant) Glyph() rune {
	if v.Index < 0 || v.Index >= Count {
		return '?'
	}
	return Glyphs[v.Index]
}

func (v Variant) String() string { return string(v.Glyph()) }

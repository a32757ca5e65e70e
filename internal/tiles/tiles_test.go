package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllIsCompleteEnumeration(t *testing.T) {
	all := All()
	require.Len(t, all, Count)

	seen := map[[4]bool]int{}
	for i, v := range all {
		require.Equal(t, i, v.Index, "variant out of index order")
		key := [4]bool{v.North, v.South, v.East, v.West}
		if prev, ok := seen[key]; ok {
			t.Fatalf("variants %d and %d share flags %v", prev, i, key)
		}
		seen[key] = i
	}
	assert.Len(t, seen, 16)
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].North = false
	a[0].Index = 99

	b := All()
	assert.True(t, b[0].North)
	assert.Equal(t, 0, b[0].Index)
}

func TestGlyphsMatchConnectors(t *testing.T) {
	cases := map[rune][4]bool{
		'┼': {true, true, true, true},
		' ': {false, false, false, false},
		'─': {false, false, true, true},
		'│': {true, true, false, false},
		'┘': {true, false, false, true},
		'╷': {false, true, false, false},
	}
	for _, v := range All() {
		want, ok := cases[v.Glyph()]
		if !ok {
			continue
		}
		got := [4]bool{v.North, v.South, v.East, v.West}
		assert.Equalf(t, want, got, "glyph %q", v.Glyph())
	}
}

func TestDirOpposite(t *testing.T) {
	for _, d := range Dirs {
		assert.Equal(t, d, d.Opposite().Opposite())
		dr, dc := d.Offset()
		or, oc := d.Opposite().Offset()
		assert.Equal(t, 0, dr+or)
		assert.Equal(t, 0, dc+oc)
	}
}

func TestConnectorsAndByIndex(t *testing.T) {
	v, ok := ByIndex(10)
	require.True(t, ok)
	assert.Equal(t, 4, v.Connectors())

	v, ok = ByIndex(11)
	require.True(t, ok)
	assert.Equal(t, 0, v.Connectors())
	assert.Equal(t, " ", v.String())

	_, ok = ByIndex(Count)
	assert.False(t, ok)
}

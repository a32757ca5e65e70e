package render

import (
	"bufio"
	"io"
	"strings"

	"pipemaze/internal/tiles"
	"pipemaze/internal/wfc"
)

// ASCIIGlyphs is a fallback table for terminals without box-drawing fonts.
var ASCIIGlyphs = [tiles.Count]rune{
	'\'', '.', '.', '\'', '+', '+', '+', '+', '-', '|', '+', ' ', '.', '-', '-', '\'',
}

// Text renders the grid with the box-drawing glyph table.
func Text(v wfc.View) string {
	return TextWith(v, tiles.Glyphs)
}

// TextWith renders undecided cells as spaces and collapsed cells with the
// glyph at their variant index. Rows are newline-terminated.
func TextWith(v wfc.View, glyphs [tiles.Count]rune) string {
	var sb strings.Builder
	sb.Grow((v.Width()*3 + 1) * v.Height())
	writeRows(&sb, v, glyphs)
	return sb.String()
}

// WriteText writes the rendered grid to w.
func WriteText(w io.Writer, v wfc.View, glyphs [tiles.Count]rune) error {
	bw := bufio.NewWriter(w)
	writeRows(bw, v, glyphs)
	return bw.Flush()
}

type runeWriter interface {
	WriteRune(r rune) (int, error)
}

func writeRows(out runeWriter, v wfc.View, glyphs [tiles.Count]rune) {
	for r := 0; r < v.Height(); r++ {
		for c := 0; c < v.Width(); c++ {
			t, ok := v.Sole(r, c)
			if !ok || t.Index < 0 || t.Index >= tiles.Count {
				out.WriteRune(' ')
				continue
			}
			out.WriteRune(glyphs[t.Index])
		}
		out.WriteRune('\n')
	}
}

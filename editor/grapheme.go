package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cluster is one grapheme cluster of a line with its rune offset in the
// document.
type cluster struct {
	text  string
	start int
	end   int
}

func splitClusters(line string, lineStart int) []cluster {
	if line == "" {
		return nil
	}
	out := make([]cluster, 0, len(line))
	off := lineStart
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		n := len(g.Runes())
		out = append(out, cluster{text: g.Str(), start: off, end: off + n})
		off += n
	}
	return out
}

// graphemeCellWidth returns the terminal-cell width of a cluster drawn at
// visualCol.
func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	return tabWidth - visualCol%tabWidth
}

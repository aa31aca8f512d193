// Package grapheme finds grapheme-cluster boundaries in rune slices so that
// caret moves and deletions never split a user-perceived character.
package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Next returns the rune offset of the boundary after off. It returns
// len(text) at the end.
func Next(text []rune, off int) int {
	if off < 0 {
		return 0
	}
	if off >= len(text) {
		return len(text)
	}
	if text[off] == '\n' {
		return off + 1
	}
	end := off
	for end < len(text) && text[end] != '\n' {
		end++
	}
	g := uniseg.NewGraphemes(string(text[off:end]))
	if !g.Next() {
		return off + 1
	}
	return off + utf8.RuneCountInString(g.Str())
}

// Prev returns the rune offset of the boundary before off. It returns 0 at
// the start.
func Prev(text []rune, off int) int {
	if off > len(text) {
		off = len(text)
	}
	if off <= 0 {
		return 0
	}
	if text[off-1] == '\n' {
		return off - 1
	}
	// Segmentation restarts at line starts, so only the current line is scanned.
	start := off - 1
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	last := start
	g := uniseg.NewGraphemes(string(text[start:off]))
	pos := start
	for g.Next() {
		last = pos
		pos += utf8.RuneCountInString(g.Str())
	}
	return last
}

// IsSpace reports whether r separates words for caret movement.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x85, 0xA0, 0x3000:
		return true
	}
	return false
}

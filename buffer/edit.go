package buffer

import "github.com/iw2rmb/textundo/internal/grapheme"

// InsertText inserts text at the caret, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	b.replace(b.target(), s, false, true)
}

// InsertNewline inserts a line break at the caret, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. A whole grapheme cluster is
// removed at a time.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	start := grapheme.Prev(b.text, b.cursor)
	b.replace(Range{Start: start, End: b.cursor}, "", false, true)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == len(b.text) {
		return
	}
	next := grapheme.Next(b.text, b.cursor)
	b.replace(Range{Start: b.cursor, End: next}, "", false, true)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replace(r, "", false, true)
}

// target is the range typing replaces: the selection, or the caret.
func (b *Buffer) target() Range {
	if r, ok := b.Selection(); ok {
		return r
	}
	return Range{Start: b.cursor, End: b.cursor}
}

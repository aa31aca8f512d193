package undo

import "github.com/iw2rmb/textundo/buffer"

// TextReader is the read side of the edited text. Offsets are rune offsets.
type TextReader interface {
	Text() string
	Len() int
	Slice(start, end int) string

	// ComposingAt reports whether a composing span overlaps [start, end].
	ComposingAt(start, end int) bool
}

// Source is the text an Undoer edits. *buffer.Buffer implements it.
//
// Replace must report its own mutation to watchers like any other edit.
type Source interface {
	TextReader

	Replace(start, end int, text string)
	SetCursor(off int)
	ClearComposing()
	Watch(w buffer.Watcher) (unwatch func())
}

var _ Source = (*buffer.Buffer)(nil)

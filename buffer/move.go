package buffer

import "github.com/iw2rmb/textundo/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, extends the selection; if false clears it
}

// Move moves the caret. Moves never change text and are not reported to
// watchers.
func (b *Buffer) Move(m Move) {
	prev := b.cursor
	next := clampInt(b.moveCursor(prev, m), 0, len(b.text))

	if !m.Extend {
		b.SetCursor(next)
		return
	}
	anchor := prev
	if b.sel.active {
		anchor = b.sel.anchor
	}
	b.SetSelection(anchor, next)
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return grapheme.Prev(b.text, off)
	case DirRight:
		return grapheme.Next(b.text, off)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return b.prevWordBoundary(off)
	case DirRight:
		return b.nextWordBoundary(off)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	start, end := b.lineBounds(off)
	switch dir {
	case DirHome:
		return start
	case DirEnd:
		return end
	case DirUp:
		if start == 0 {
			return off
		}
		ps, pe := b.lineBounds(start - 1)
		return minInt(ps+off-start, pe)
	case DirDown:
		if end == len(b.text) {
			return off
		}
		ns, ne := b.lineBounds(end + 1)
		return minInt(ns+off-start, ne)
	case DirLeft:
		return grapheme.Prev(b.text, off)
	case DirRight:
		return grapheme.Next(b.text, off)
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.text)
	default:
		return off
	}
}

// lineBounds returns the [start, end) offsets of the line holding off,
// excluding its newline.
func (b *Buffer) lineBounds(off int) (start, end int) {
	off = clampInt(off, 0, len(b.text))
	start = off
	for start > 0 && b.text[start-1] != '\n' {
		start--
	}
	end = off
	for end < len(b.text) && b.text[end] != '\n' {
		end++
	}
	return start, end
}

// Word boundary rules (v0):
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func (b *Buffer) prevWordBoundary(off int) int {
	start, _ := b.lineBounds(off)
	i := off
	for i > start && grapheme.IsSpace(b.text[i-1]) {
		i--
	}
	for i > start && !grapheme.IsSpace(b.text[i-1]) {
		i--
	}
	return i
}

func (b *Buffer) nextWordBoundary(off int) int {
	_, end := b.lineBounds(off)
	i := off
	for i < end && grapheme.IsSpace(b.text[i]) {
		i++
	}
	for i < end && !grapheme.IsSpace(b.text[i]) {
		i++
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

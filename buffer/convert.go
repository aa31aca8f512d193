package buffer

import "unicode/utf8"

// PosFromOffset converts a rune offset to a (row, col) position. Offsets
// outside the text report false.
func (b *Buffer) PosFromOffset(off int) (Pos, bool) {
	if off < 0 || off > len(b.text) {
		return Pos{}, false
	}
	var p Pos
	for _, r := range b.text[:off] {
		if r == '\n' {
			p.Row++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p, true
}

// OffsetFromPos converts a position to a rune offset. Columns past the end
// of a line clamp to the line end; rows past the text report false.
func (b *Buffer) OffsetFromPos(p Pos) (int, bool) {
	if p.Row < 0 || p.Col < 0 {
		return 0, false
	}
	off := 0
	for row := 0; row < p.Row; row++ {
		for off < len(b.text) && b.text[off] != '\n' {
			off++
		}
		if off == len(b.text) {
			return 0, false
		}
		off++
	}
	_, end := b.lineBounds(off)
	return minInt(off+p.Col, end), true
}

// CursorPos returns the caret as a (row, col) position.
func (b *Buffer) CursorPos() Pos {
	p, _ := b.PosFromOffset(b.cursor)
	return p
}

// ByteOffset converts a rune offset to a UTF-8 byte offset into Text.
func (b *Buffer) ByteOffset(off int) int {
	off = clampInt(off, 0, len(b.text))
	n := 0
	for _, r := range b.text[:off] {
		n += utf8.RuneLen(r)
	}
	return n
}

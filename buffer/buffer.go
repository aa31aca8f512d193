package buffer

import "strings"

type selectionState struct {
	active bool
	anchor int
}

// Buffer holds the text, the caret, an optional selection and an optional
// composing span.
type Buffer struct {
	text        []rune
	version     uint64
	textVersion uint64

	cursor int
	sel    selectionState

	comp     Range
	composed bool

	watchers []*watchEntry
}

// New returns a buffer holding text with the caret at offset 0.
func New(text string) *Buffer {
	return &Buffer{text: []rune(text)}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the text length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Slice returns the text in [start, end), clamped to the buffer.
func (b *Buffer) Slice(start, end int) string {
	r := b.clampRange(Range{Start: start, End: end})
	return string(b.text[r.Start:r.End])
}

// Lines returns the text split at '\n'. There is always at least one line.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.text), "\n")
}

// Version increases whenever text, caret, selection or composing span
// change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increases only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// Cursor returns the caret offset.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the caret and clears the selection.
func (b *Buffer) SetCursor(off int) {
	off = clampInt(off, 0, len(b.text))
	if off == b.cursor && !b.sel.active {
		return
	}
	b.cursor = off
	b.sel = selectionState{}
	b.version++
}

// Selection returns the normalized selection, if one is active.
func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.cursor {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: b.sel.anchor, End: b.cursor}), true
}

// SetSelection selects from anchor to caret; the caret ends at caret.
// An empty selection clears it.
func (b *Buffer) SetSelection(anchor, caret int) {
	anchor = clampInt(anchor, 0, len(b.text))
	caret = clampInt(caret, 0, len(b.text))
	next := selectionState{active: anchor != caret, anchor: anchor}
	if next == b.sel && caret == b.cursor {
		return
	}
	b.sel = next
	b.cursor = caret
	b.version++
}

// ClearSelection drops the selection and keeps the caret.
func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) clampRange(r Range) Range {
	r = NormalizeRange(r)
	return Range{
		Start: clampInt(r.Start, 0, len(b.text)),
		End:   clampInt(r.End, 0, len(b.text)),
	}
}

// replace swaps r for text, keeps the caret and composing span consistent
// and notifies watchers. With caretEnd the caret lands just past the new
// text; otherwise it shifts with the text around it. It returns the offset
// just past the new text.
//
// Identical replacements are still announced; watchers decide whether they
// matter. Only an empty range with empty text is skipped.
func (b *Buffer) replace(r Range, text string, composing, caretEnd bool) (end int, ok bool) {
	r = b.clampRange(r)
	ins := []rune(text)
	if r.IsEmpty() && len(ins) == 0 {
		return r.Start, false
	}

	e := Edit{Start: r.Start, Removed: r.Len(), Inserted: len(ins)}
	b.notifyBefore(e)

	changed := string(b.text[r.Start:r.End]) != text
	out := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	out = append(out, b.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[r.End:]...)
	b.text = out

	end = r.Start + len(ins)
	delta := len(ins) - r.Len()
	switch {
	case caretEnd:
		b.cursor = end
	case b.cursor >= r.End:
		b.cursor += delta
	case b.cursor > r.Start:
		b.cursor = end
	}
	b.sel = selectionState{}
	b.adjustComposing(r, end, delta, composing)
	if changed {
		b.textVersion++
	}
	if changed || composing {
		b.version++
	}

	b.notifyAfter(e)
	b.notifySettled()
	return end, true
}

// Replace swaps [start, end) for text. The caret is shifted with the text
// around it and the selection is cleared.
func (b *Buffer) Replace(start, end int, text string) {
	b.replace(Range{Start: start, End: end}, text, false, false)
}

// SetText replaces the whole text and leaves the caret at its end.
func (b *Buffer) SetText(text string) {
	b.replace(Range{Start: 0, End: len(b.text)}, text, false, true)
}

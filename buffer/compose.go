package buffer

// SetComposingText replaces the composing span with text and marks the
// result as composing. Without a span it replaces the selection or inserts
// at the caret. The span is in place before AfterChange fires.
func (b *Buffer) SetComposingText(text string) {
	b.replace(b.compositionTarget(), text, true, true)
}

// CommitText replaces the composing span (or selection, or caret) with text
// that is no longer composing.
func (b *Buffer) CommitText(text string) {
	r := b.compositionTarget()
	if r.IsEmpty() && text == "" {
		b.FinishComposingText()
		return
	}
	b.replace(r, text, false, true)
}

// FinishComposingText keeps the composed text as it is and drops the span.
// Watchers receive Settled only.
func (b *Buffer) FinishComposingText() {
	if !b.composed {
		return
	}
	b.comp = Range{}
	b.composed = false
	b.version++
	b.notifySettled()
}

// ClearComposing drops the composing span without notifying watchers.
func (b *Buffer) ClearComposing() {
	if !b.composed {
		return
	}
	b.comp = Range{}
	b.composed = false
	b.version++
}

// ComposingRange returns the composing span, if any.
func (b *Buffer) ComposingRange() (Range, bool) {
	return b.comp, b.composed
}

// ComposingAt reports whether the composing span overlaps [start, end].
func (b *Buffer) ComposingAt(start, end int) bool {
	if !b.composed {
		return false
	}
	return b.comp.Overlaps(NormalizeRange(Range{Start: start, End: end}))
}

func (b *Buffer) compositionTarget() Range {
	if b.composed {
		return b.comp
	}
	return b.target()
}

// adjustComposing keeps the span on the text it marks after replacing r.
// Edits that cut into a span end it.
func (b *Buffer) adjustComposing(r Range, end, delta int, composing bool) {
	if composing {
		b.comp = Range{Start: r.Start, End: end}
		b.composed = end > r.Start
		return
	}
	if !b.composed {
		return
	}
	switch {
	case r.End <= b.comp.Start:
		b.comp.Start += delta
		b.comp.End += delta
	case r.Start >= b.comp.End:
	default:
		b.comp = Range{}
		b.composed = false
	}
}

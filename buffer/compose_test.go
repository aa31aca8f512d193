package buffer

import "testing"

func TestCompose_SetComposingTextTracksSpan(t *testing.T) {
	b := New("x")
	b.SetCursor(1)

	b.SetComposingText("あ")
	b.SetComposingText("あい")
	if got, want := b.Text(), "xあい"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	r, ok := b.ComposingRange()
	if !ok || r != (Range{Start: 1, End: 3}) {
		t.Fatalf("composing=%v,%v want [1,3)", r, ok)
	}
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
	if !b.ComposingAt(1, 3) || !b.ComposingAt(3, 3) {
		t.Fatalf("expected span to overlap [1,3] and [3,3]")
	}
	if b.ComposingAt(0, 0) {
		t.Fatalf("span should not overlap [0,0]")
	}
}

func TestCompose_SpanVisibleInAfterChange(t *testing.T) {
	b := New("")
	var seen bool
	b.Watch(funcWatcher{after: func(Edit) { seen = b.ComposingAt(0, 1) }})

	b.SetComposingText("か")
	if !seen {
		t.Fatalf("expected composing span set before AfterChange")
	}
}

func TestCompose_CommitTextEndsSpan(t *testing.T) {
	b := New("")
	b.SetComposingText("あい")
	b.SetComposingText("愛")

	b.CommitText("愛")
	if got, want := b.Text(), "愛"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if _, ok := b.ComposingRange(); ok {
		t.Fatalf("expected composing span cleared")
	}
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
}

func TestCompose_FinishReportsSettledOnly(t *testing.T) {
	b := New("")
	b.SetComposingText("b")
	w := &recordingWatcher{}
	b.Watch(w)

	b.FinishComposingText()
	if len(w.log) != 1 || w.log[0] != "settled" {
		t.Fatalf("log=%q, want settled only", w.log)
	}
	if got := b.Text(); got != "b" {
		t.Fatalf("text=%q, want %q", got, "b")
	}

	b.FinishComposingText()
	if len(w.log) != 1 {
		t.Fatalf("finish without span should not notify")
	}
}

func TestCompose_EditsAroundSpan(t *testing.T) {
	b := New("ab")
	b.SetCursor(1)
	b.SetComposingText("xy") // a[xy]b

	b.Replace(0, 0, "__")
	if r, _ := b.ComposingRange(); r != (Range{Start: 3, End: 5}) {
		t.Fatalf("span after insert before=%v, want [3,5)", r)
	}

	b.Replace(6, 6, "!")
	if r, _ := b.ComposingRange(); r != (Range{Start: 3, End: 5}) {
		t.Fatalf("span after insert after=%v, want [3,5)", r)
	}

	b.Replace(4, 5, "")
	if _, ok := b.ComposingRange(); ok {
		t.Fatalf("expected overlapping edit to drop span")
	}
}

func TestCompose_ClearComposingIsSilent(t *testing.T) {
	b := New("")
	b.SetComposingText("k")
	w := &recordingWatcher{}
	b.Watch(w)

	b.ClearComposing()
	if _, ok := b.ComposingRange(); ok {
		t.Fatalf("expected span cleared")
	}
	if len(w.log) != 0 {
		t.Fatalf("log=%q, want none", w.log)
	}
}

func TestCompose_EmptyCompositionDropsSpan(t *testing.T) {
	b := New("z")
	b.SetCursor(1)
	b.SetComposingText("か")
	b.SetComposingText("")
	if got := b.Text(); got != "z" {
		t.Fatalf("text=%q, want %q", got, "z")
	}
	if _, ok := b.ComposingRange(); ok {
		t.Fatalf("expected span cleared")
	}
}

type funcWatcher struct {
	before  func(Edit)
	after   func(Edit)
	settled func()
}

func (w funcWatcher) BeforeChange(e Edit) {
	if w.before != nil {
		w.before(e)
	}
}

func (w funcWatcher) AfterChange(e Edit) {
	if w.after != nil {
		w.after(e)
	}
}

func (w funcWatcher) Settled() {
	if w.settled != nil {
		w.settled()
	}
}

package grapheme

import "testing"

const (
	combining = "e\u0301"
	family    = "\U0001F468\u200D\U0001F469\u200D\U0001F467"
)

func TestCount_MultiRuneClusters(t *testing.T) {
	if got := Count("a" + combining + family + "b"); got != 4 {
		t.Fatalf("count=%d, want %d", got, 4)
	}
	if got := Count(""); got != 0 {
		t.Fatalf("count of empty=%d, want 0", got)
	}
}

func TestNextPrev_StepWholeClusters(t *testing.T) {
	text := []rune("a" + combining + family + "b")
	// rune offsets of boundaries: 0 a 1 e+acute 3 family(5 runes) 8 b 9
	wantForward := []int{1, 3, 8, 9, 9}
	off := 0
	for i, want := range wantForward {
		off = Next(text, off)
		if off != want {
			t.Fatalf("Next step %d: got %d, want %d", i, off, want)
		}
	}

	wantBackward := []int{8, 3, 1, 0, 0}
	for i, want := range wantBackward {
		off = Prev(text, off)
		if off != want {
			t.Fatalf("Prev step %d: got %d, want %d", i, off, want)
		}
	}
}

func TestNextPrev_NewlineIsItsOwnCluster(t *testing.T) {
	text := []rune("ab\ncd")
	if got := Next(text, 2); got != 3 {
		t.Fatalf("Next over newline: got %d, want 3", got)
	}
	if got := Prev(text, 3); got != 2 {
		t.Fatalf("Prev over newline: got %d, want 2", got)
	}
	if got := Prev(text, 4); got != 3 {
		t.Fatalf("Prev at line start+1: got %d, want 3", got)
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace('\t') || !IsSpace('\u3000') {
		t.Fatalf("tab and ideographic space should be space")
	}
	if IsSpace('a') || IsSpace('愛') {
		t.Fatalf("letters should not be space")
	}
}

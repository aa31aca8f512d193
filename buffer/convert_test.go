package buffer

import "testing"

func TestConvert_PosFromOffset(t *testing.T) {
	b := New("ab\nπテ\n")
	cases := []struct {
		off  int
		want Pos
		ok   bool
	}{
		{off: 0, want: Pos{Row: 0, Col: 0}, ok: true},
		{off: 2, want: Pos{Row: 0, Col: 2}, ok: true},
		{off: 3, want: Pos{Row: 1, Col: 0}, ok: true},
		{off: 5, want: Pos{Row: 1, Col: 2}, ok: true},
		{off: 6, want: Pos{Row: 2, Col: 0}, ok: true},
		{off: 7, ok: false},
		{off: -1, ok: false},
	}
	for _, tc := range cases {
		got, ok := b.PosFromOffset(tc.off)
		if ok != tc.ok {
			t.Fatalf("PosFromOffset(%d) ok=%v, want %v", tc.off, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("PosFromOffset(%d)=%v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestConvert_OffsetFromPos(t *testing.T) {
	b := New("ab\nπテ\n")
	cases := []struct {
		pos  Pos
		want int
		ok   bool
	}{
		{pos: Pos{Row: 0, Col: 0}, want: 0, ok: true},
		{pos: Pos{Row: 0, Col: 99}, want: 2, ok: true},
		{pos: Pos{Row: 1, Col: 1}, want: 4, ok: true},
		{pos: Pos{Row: 2, Col: 0}, want: 6, ok: true},
		{pos: Pos{Row: 3, Col: 0}, ok: false},
		{pos: Pos{Row: -1, Col: 0}, ok: false},
	}
	for _, tc := range cases {
		got, ok := b.OffsetFromPos(tc.pos)
		if ok != tc.ok {
			t.Fatalf("OffsetFromPos(%v) ok=%v, want %v", tc.pos, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("OffsetFromPos(%v)=%d, want %d", tc.pos, got, tc.want)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	b := New("héllo\n\nwörld テスト")
	for off := 0; off <= b.Len(); off++ {
		p, ok := b.PosFromOffset(off)
		if !ok {
			t.Fatalf("PosFromOffset(%d) failed", off)
		}
		got, ok := b.OffsetFromPos(p)
		if !ok || got != off {
			t.Fatalf("round trip %d -> %v -> %d,%v", off, p, got, ok)
		}
	}
}

func TestConvert_ByteOffset(t *testing.T) {
	b := New("aπテ")
	if got := b.ByteOffset(1); got != 1 {
		t.Fatalf("ByteOffset(1)=%d, want 1", got)
	}
	if got := b.ByteOffset(2); got != 3 {
		t.Fatalf("ByteOffset(2)=%d, want 3", got)
	}
	if got := b.ByteOffset(99); got != 6 {
		t.Fatalf("ByteOffset(99)=%d, want 6", got)
	}
}

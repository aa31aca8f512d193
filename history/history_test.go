package history

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func rec(i int) Record {
	return Record{Start: i, After: fmt.Sprint(i)}
}

func TestHistory_Empty(t *testing.T) {
	h := New(Unbounded)

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Nil(t, h.Current())

	_, ok := h.StepBack()
	assert.False(t, ok)
	_, ok = h.StepForward()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Position())
}

func TestHistory_StepBackAndForward(t *testing.T) {
	h := New(Unbounded)
	h.Add(rec(1))
	h.Add(rec(2))

	require.Equal(t, 2, h.Position())
	assert.Equal(t, rec(2), *h.Current())

	got, ok := h.StepBack()
	require.True(t, ok)
	assert.Equal(t, rec(2), got)
	assert.Equal(t, 1, h.Position())
	assert.True(t, h.CanUndo())
	assert.True(t, h.CanRedo())
	assert.Equal(t, rec(1), *h.Current())

	got, ok = h.StepForward()
	require.True(t, ok)
	assert.Equal(t, rec(2), got)
	assert.Equal(t, 2, h.Position())
	assert.False(t, h.CanRedo())
}

func TestHistory_AddTruncatesRedoTail(t *testing.T) {
	h := New(Unbounded)
	for i := 1; i <= 4; i++ {
		h.Add(rec(i))
	}
	h.StepBack()
	h.StepBack()
	require.Equal(t, 2, h.Position())

	h.Add(rec(9))

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 3, h.Position())
	if diff := cmp.Diff([]Record{rec(1), rec(2), rec(9)}, h.Records()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_CurrentIsMutableTop(t *testing.T) {
	h := New(Unbounded)
	h.Add(Record{Start: 0, After: "1"})

	top := h.Current()
	top.After += "2"

	assert.Equal(t, "12", h.Records()[0].After)
}

func TestHistory_AddTrimsOldest(t *testing.T) {
	h := New(2)
	h.Add(rec(1))
	h.Add(rec(2))
	h.Add(rec(3))

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 2, h.Position())
	if diff := cmp.Diff([]Record{rec(2), rec(3)}, h.Records()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_SetMaxSize(t *testing.T) {
	cases := []struct {
		name     string
		records  int
		backs    int
		max      int
		wantLen  int
		wantPos  int
		wantHead Record
	}{
		{name: "all applied", records: 5, backs: 0, max: 3, wantLen: 3, wantPos: 3, wantHead: rec(3)},
		{name: "partly undone", records: 5, backs: 2, max: 3, wantLen: 3, wantPos: 1, wantHead: rec(3)},
		{name: "position floors at zero", records: 5, backs: 4, max: 2, wantLen: 2, wantPos: 0, wantHead: rec(4)},
		{name: "zero cap", records: 3, backs: 0, max: 0, wantLen: 0, wantPos: 0},
		{name: "cap above size", records: 2, backs: 1, max: 10, wantLen: 2, wantPos: 1, wantHead: rec(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := New(Unbounded)
			for i := 1; i <= tc.records; i++ {
				h.Add(rec(i))
			}
			for i := 0; i < tc.backs; i++ {
				h.StepBack()
			}

			h.SetMaxSize(tc.max)

			assert.Equal(t, tc.max, h.MaxSize())
			assert.Equal(t, tc.wantLen, h.Len())
			assert.Equal(t, tc.wantPos, h.Position())
			if tc.wantLen > 0 {
				assert.Equal(t, tc.wantHead, h.Records()[0])
			}
		})
	}
}

func TestHistory_Clear(t *testing.T) {
	h := New(Unbounded)
	h.Add(rec(1))
	h.Add(rec(2))
	h.StepBack()

	h.Clear()

	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Position())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_NegativeSizeIsUnbounded(t *testing.T) {
	h := New(-7)
	assert.Equal(t, Unbounded, h.MaxSize())
	for i := 0; i < 100; i++ {
		h.Add(rec(i))
	}
	assert.Equal(t, 100, h.Len())
}

// TestHistory_Model drives History and a plain slice model with the same
// random operations and checks that they agree at every step.
func TestHistory_Model(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := New(Unbounded)
		var model []Record
		pos := 0
		max := Unbounded
		next := 0

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				next++
				r := rec(next)
				h.Add(r)
				model = append(model[:pos:pos], r)
				pos++
				if max >= 0 && len(model) > max {
					excess := len(model) - max
					model = model[excess:]
					pos -= excess
					if pos < 0 {
						pos = 0
					}
				}
				if h.Len() != pos {
					t.Fatalf("after add: len=%d, want position %d", h.Len(), pos)
				}
			},
			"back": func(t *rapid.T) {
				got, ok := h.StepBack()
				if pos == 0 {
					if ok {
						t.Fatalf("StepBack at base returned %+v", got)
					}
					return
				}
				pos--
				if !ok || got != model[pos] {
					t.Fatalf("StepBack = %+v, %v; want %+v", got, ok, model[pos])
				}
			},
			"forward": func(t *rapid.T) {
				got, ok := h.StepForward()
				if pos >= len(model) {
					if ok {
						t.Fatalf("StepForward at tip returned %+v", got)
					}
					return
				}
				if !ok || got != model[pos] {
					t.Fatalf("StepForward = %+v, %v; want %+v", got, ok, model[pos])
				}
				pos++
			},
			"cap": func(t *rapid.T) {
				n := rapid.IntRange(-1, 6).Draw(t, "max")
				h.SetMaxSize(n)
				max = n
				if max >= 0 && len(model) > max {
					excess := len(model) - max
					model = model[excess:]
					pos -= excess
					if pos < 0 {
						pos = 0
					}
				}
			},
			"": func(t *rapid.T) {
				if h.Position() != pos || h.Len() != len(model) {
					t.Fatalf("position/len = %d/%d, want %d/%d", h.Position(), h.Len(), pos, len(model))
				}
				if h.CanUndo() != (pos > 0) || h.CanRedo() != (pos < len(model)) {
					t.Fatalf("CanUndo/CanRedo = %v/%v at %d/%d", h.CanUndo(), h.CanRedo(), pos, len(model))
				}
				got := h.Records()
				for i := range model {
					if got[i] != model[i] {
						t.Fatalf("record %d = %+v, want %+v", i, got[i], model[i])
					}
				}
			},
		})
	})
}

package diff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Change replaces Before with After at rune offset Offset.
type Change struct {
	Offset int
	Before string
	After  string
}

// IsEmpty reports whether the change has nothing to record.
func (c Change) IsEmpty() bool {
	return c.Before == c.After
}

// Compute returns the minimal changed span between initial and final.
//
// The suffix scan is bounded by what is left after the prefix, so a rune is
// never counted in both.
func Compute(initial, final string) Change {
	dmp := diffmatchpatch.New()

	p := dmp.DiffCommonPrefix(initial, final)
	a := []rune(initial)[p:]
	b := []rune(final)[p:]
	s := dmp.DiffCommonSuffix(string(a), string(b))

	return Change{
		Offset: p,
		Before: string(a[:len(a)-s]),
		After:  string(b[:len(b)-s]),
	}
}

package buffer

// Pos is a (row, col) location in runes, both 0-based. It exists for
// renderers; every editing operation works on offsets.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open rune range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the rune length of r.
func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.Start == r.End }

// NormalizeRange orders r so that Start <= End.
func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

// Overlaps reports whether r and o touch or intersect. An empty range at
// either edge of o counts as overlapping.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

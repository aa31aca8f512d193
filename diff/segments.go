package diff

import "github.com/sergi/go-diff/diffmatchpatch"

// Op classifies a Segment.
type Op int8

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Segment is one run of a character-level diff.
type Segment struct {
	Op   Op
	Text string
}

// Segments returns a semantically cleaned character diff of before and
// after, suitable for previewing what an undo step will change.
func Segments(before, after string) []Segment {
	if before == after {
		if before == "" {
			return nil
		}
		return []Segment{{Op: OpEqual, Text: before}}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	out := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		seg := Segment{Text: d.Text}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			seg.Op = OpInsert
		case diffmatchpatch.DiffDelete:
			seg.Op = OpDelete
		default:
			seg.Op = OpEqual
		}
		out = append(out, seg)
	}
	return out
}

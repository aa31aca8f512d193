package history

import "unicode/utf8"

// Action classifies an edit for batching.
type Action uint8

const (
	ActionNone Action = iota
	ActionInsert
	ActionDelete
	ActionPaste
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	case ActionPaste:
		return "paste"
	default:
		return "unknown"
	}
}

// Classify returns the action for replacing before with after.
func Classify(before, after string) Action {
	switch {
	case before == "" && after == "":
		return ActionNone
	case after == "":
		return ActionDelete
	case before == "":
		return ActionInsert
	default:
		return ActionPaste
	}
}

// Record is one undoable step: Before occupied [Start, Start+len(Before))
// and was replaced by After. Offsets and lengths are in runes.
//
// Before never equals After in a recorded step.
type Record struct {
	Start  int
	Before string
	After  string

	// Composed is set on records produced by a composition session. They are
	// never extended by later edits.
	Composed bool
}

// Action classifies the record.
func (r Record) Action() Action { return Classify(r.Before, r.After) }

// IsNoop reports whether replaying the record would change nothing.
func (r Record) IsNoop() bool { return r.Before == r.After }

// BeforeEnd is the rune offset just past Before.
func (r Record) BeforeEnd() int { return r.Start + utf8.RuneCountInString(r.Before) }

// AfterEnd is the rune offset just past After.
func (r Record) AfterEnd() int { return r.Start + utf8.RuneCountInString(r.After) }

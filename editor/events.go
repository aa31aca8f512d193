package editor

import "github.com/iw2rmb/textundo/buffer"

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// v0: simplest payload; host can diff if needed.
	Text string

	CanUndo   bool
	CanRedo   bool
	Composing bool
}

// changeKey is what OnChange compares between updates.
type changeKey struct {
	version   uint64
	canUndo   bool
	canRedo   bool
	composing bool
}

func (m *Model) currentChangeKey() changeKey {
	return changeKey{
		version:   m.buf.Version(),
		canUndo:   m.undo.CanUndo(),
		canRedo:   m.undo.CanRedo(),
		composing: m.undo.Composing(),
	}
}

func (m *Model) buildChangeEvent() ChangeEvent {
	k := m.currentChangeKey()
	ev := ChangeEvent{
		Version:   k.version,
		Cursor:    m.buf.CursorPos(),
		Text:      m.buf.Text(),
		CanUndo:   k.canUndo,
		CanRedo:   k.canRedo,
		Composing: k.composing,
	}
	if r, ok := m.buf.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}

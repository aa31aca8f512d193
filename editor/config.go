package editor

import (
	"time"

	"go.uber.org/zap"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options. A zero Style renders plain text; hosts usually
	// pass DefaultStyle().
	ShowLineNums bool
	Style        Style
	TabWidth     int

	KeyMap    KeyMap
	Clipboard Clipboard
	ReadOnly  bool

	// Forwarded to undo.Options. Zero values keep every record and batch
	// edits made within undo.DefaultBatchWindow.
	HistoryLimit int
	BatchWindow  time.Duration
	Now          func() time.Time
	Logger       *zap.Logger

	// OnChange is called after each Update that changed text, caret,
	// selection, composition or undo/redo availability.
	OnChange func(ChangeEvent)
}

const defaultTabWidth = 4

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = defaultTabWidth
	}
	if isZeroKeyMap(c.KeyMap) {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

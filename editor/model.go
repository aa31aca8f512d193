package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textundo/buffer"
	"github.com/iw2rmb/textundo/undo"
)

// Model is a Bubble Tea component that renders and edits a buffer and keeps
// its undo history.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	undo *undo.Undoer

	focused     bool
	composeMode bool

	viewport viewport.Model

	last changeKey
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	buf := buffer.New(cfg.Text)
	m := Model{
		cfg: cfg,
		buf: buf,
		undo: undo.New(buf, undo.Options{
			MaxHistorySize: cfg.HistoryLimit,
			BatchWindow:    cfg.BatchWindow,
			Now:            cfg.Now,
			Logger:         cfg.Logger.Named("undo"),
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.last = m.currentChangeKey()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Undoer exposes the history, e.g. to register a state-change callback.
func (m Model) Undoer() *undo.Undoer { return m.undo }

// Composing reports whether composition mode is on.
func (m Model) Composing() bool { return m.composeMode }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.sync()
		// Don't follow the cursor here; allow manual scrolling via mouse wheel.
		return m, cmd
	case tea.KeyMsg:
		m = m.updateKey(msg)
		if m.sync() {
			m.followCursor()
		}
		return m, nil
	default:
		// Hosts may mutate the buffer directly between messages.
		if m.sync() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// Close stops recording edits. The model stays usable for rendering.
func (m Model) Close() { m.undo.Disconnect() }

// sync rebuilds the content and emits OnChange when anything observable
// changed since the last call.
func (m *Model) sync() (changed bool) {
	k := m.currentChangeKey()
	if k == m.last {
		return false
	}
	m.last = k
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	row := m.buf.CursorPos().Row
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

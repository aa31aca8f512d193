package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/textundo"
	"github.com/iw2rmb/textundo/editor"
	"github.com/iw2rmb/textundo/internal/grapheme"
)

const panelWidth = 36

type model struct {
	editor editor.Model
	width  int
	height int
}

func newModel(cfg editor.Config) model {
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor = m.editor.SetSize(max(msg.Width-panelWidth-1, 0), max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			m.editor.Close()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	panel := renderHistory(m.editor.Undoer(), panelWidth, max(m.height-1, 0))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), " ", panel)
	return body + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	u := m.editor.Undoer()
	mode := "edit"
	if m.editor.Composing() {
		mode = "compose"
	}
	parts := []string{
		"textundo " + textundo.VersionTag(),
		"mode: " + mode,
		fmt.Sprintf("chars: %d", grapheme.Count(m.editor.Buffer().Text())),
		fmt.Sprintf("undo: %s", onOff(u.CanUndo())),
		fmt.Sprintf("redo: %s", onOff(u.CanRedo())),
		"ctrl+k compose · ctrl+z/ctrl+y undo/redo · ctrl+q quit",
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func run() error {
	var (
		logPath = flag.String("log", "", "write debug logs to this file")
		file    = flag.String("file", "", "load initial text from this file")
		limit   = flag.Int("history", 0, "maximum number of undo steps (0 keeps all)")
		window  = flag.Duration("batch", time.Second, "pause that ends a batch of typing")
	)
	flag.Parse()

	log, err := newLogger(*logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = log.Sync() }()

	text := strings.Join([]string{
		"textundo demo",
		"",
		"Type, delete and paste; quick runs of typing undo as one step.",
		"Ctrl+K starts a composition: type, then Enter commits or Esc cancels.",
		"The panel on the right shows the history; ▶ marks the next undo.",
	}, "\n")
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read %s: %w", *file, err)
		}
		text = string(b)
	}

	cfg := editor.Config{
		Text:         text,
		ShowLineNums: true,
		Style:        editor.DefaultStyle(),
		Clipboard:    systemClipboard{log: log},
		HistoryLimit: *limit,
		BatchWindow:  *window,
		Logger:       log,
	}
	log.Info("starting", zap.String("version", textundo.Version()), zap.Int("history", *limit))

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/textundo/buffer"
)

// lineState is what a single line needs from the buffer to render.
type lineState struct {
	cursor    int
	focused   bool
	sel       buffer.Range
	selOK     bool
	comp      buffer.Range
	compOK    bool
	tabWidth  int
	lineStart int
}

func (m *Model) renderContent() string {
	lines := m.buf.Lines()
	cursorRow := m.buf.CursorPos().Row
	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(lines))
	}

	st := lineState{
		cursor:   m.buf.Cursor(),
		focused:  m.focused,
		tabWidth: m.cfg.TabWidth,
	}
	st.sel, st.selOK = m.buf.Selection()
	st.comp, st.compOK = m.buf.ComposingRange()

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(renderLine(m.cfg.Style, line, st))
		out = append(out, sb.String())
		st.lineStart += utf8.RuneCountInString(line) + 1
	}
	return strings.Join(out, "\n")
}

func renderLine(st Style, line string, ls lineState) string {
	lineEnd := ls.lineStart + utf8.RuneCountInString(line)
	hasCursor := ls.focused && ls.cursor >= ls.lineStart && ls.cursor <= lineEnd

	var sb strings.Builder
	col := 0
	for _, c := range splitClusters(line, ls.lineStart) {
		w := graphemeCellWidth(c.text, col, ls.tabWidth)
		text := c.text
		if text == "\t" {
			text = strings.Repeat(" ", w)
		}
		col += w

		style := st.Text
		switch {
		case hasCursor && ls.cursor == c.start:
			style = st.Cursor
		case ls.selOK && c.start < ls.sel.End && c.end > ls.sel.Start:
			style = st.Selection
		case ls.compOK && c.start < ls.comp.End && c.end > ls.comp.Start:
			style = st.Composing.Inherit(st.Text)
		}
		sb.WriteString(style.Render(text))
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if hasCursor && ls.cursor == lineEnd {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// Width returns the widest rendered line in cells, for hosts laying out
// panels beside the editor.
func (m Model) Width() int {
	w := 0
	for _, line := range strings.Split(m.renderContent(), "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

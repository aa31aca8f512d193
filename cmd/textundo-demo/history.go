package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/textundo/diff"
	"github.com/iw2rmb/textundo/history"
	"github.com/iw2rmb/textundo/undo"
)

var (
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	insertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	deleteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Strikethrough(true)
	equalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	redoStyle    = lipgloss.NewStyle().Faint(true)
	composeBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("ime")
)

// renderHistory draws the newest records that fit into height rows.
func renderHistory(u *undo.Undoer, width, height int) string {
	inner := width - panelStyle.GetHorizontalFrameSize()
	rows := height - panelStyle.GetVerticalFrameSize() - 1
	if inner <= 0 || rows <= 0 {
		return ""
	}

	records := u.Records()
	pos := u.Position()
	start := max(len(records)-rows, 0)

	lines := []string{titleStyle.Render(fmt.Sprintf("history %d/%d", pos, len(records)))}
	for i := start; i < len(records); i++ {
		marker := "  "
		if i == pos-1 {
			marker = "▶ "
		}
		line := marker + describe(records[i], inner-runewidth.StringWidth(marker))
		if i >= pos {
			line = redoStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if len(records) == 0 {
		lines = append(lines, redoStyle.Render("(empty)"))
	}
	return panelStyle.Width(width - panelStyle.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// describe renders one record as "@offset action text", with the changed
// characters highlighted and the whole line cut to width cells.
func describe(r history.Record, width int) string {
	label := fmt.Sprintf("@%d %s ", r.Start, r.Action())
	if r.Composed {
		label += composeBadge + " "
	}
	budget := width - lipgloss.Width(label)
	if budget <= 0 {
		return runewidth.Truncate(label, width, "…")
	}

	var sb strings.Builder
	used := 0
	for _, seg := range diff.Segments(r.Before, r.After) {
		text := visible(seg.Text)
		remaining := budget - used
		if remaining <= 0 {
			break
		}
		if runewidth.StringWidth(text) > remaining {
			text = runewidth.Truncate(text, remaining, "…")
		}
		used += runewidth.StringWidth(text)

		switch seg.Op {
		case diff.OpInsert:
			sb.WriteString(insertStyle.Render(text))
		case diff.OpDelete:
			sb.WriteString(deleteStyle.Render(text))
		default:
			sb.WriteString(equalStyle.Render(text))
		}
	}
	return label + sb.String()
}

// visible makes whitespace readable in a single panel row.
func visible(s string) string {
	return strings.NewReplacer("\n", "⏎", "\t", "→", " ", "·").Replace(s)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/gridsheet/internal/grid"
	"github.com/young1lin/gridsheet/internal/render"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderTabs(),
		m.renderToolbar(),
		m.buildTable().View(),
		m.renderStatus(),
		m.renderHelp(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabs renders the filter tab bar
func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(grid.Filters()))
	for _, f := range grid.Filters() {
		style := m.styles.Tab
		if f == m.grid.Filter() {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(f.String()))
	}
	return strings.Join(tabs, strings.Repeat(" ", tabGap))
}

// renderToolbar renders the New Row button and the row counts
func (m Model) renderToolbar() string {
	button := m.styles.Button.Render(newRowLabel)
	caption := m.styles.Caption.Render(fmt.Sprintf("%d of %d rows", m.grid.ViewLen(), m.grid.Len()))
	return lipgloss.JoinHorizontal(lipgloss.Top, button, "  ", caption)
}

// renderStatus renders the selected cell and the last notice or error
func (m Model) renderStatus() string {
	sel := m.grid.Selection()

	var cell string
	if rec, ok := m.grid.SelectedRecord(); ok {
		cell = fmt.Sprintf("R%d %s: %s", sel.Row+1, sel.Column.Label(), rec.Value(sel.Column))
	} else {
		cell = "no row selected"
	}
	if m.width > 0 {
		cell = render.Truncate(cell, m.width)
	}

	line := m.styles.Status.Render(cell)
	switch {
	case m.err != nil:
		line += "  " + m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	case m.notice != "":
		line += "  " + m.styles.Muted.Render(m.notice)
	}
	return line
}

// renderHelp renders the key help line
func (m Model) renderHelp() string {
	if m.editing {
		return m.help.View(editingKeyMap{m.keys})
	}
	return m.help.View(m.keys)
}

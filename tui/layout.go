package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/gridsheet/internal/grid"
)

// Screen rows, top to bottom. The table uses a rounded border, so its
// header sits one line below tableTop and the first body row three below.
const (
	tabRow     = 0
	toolbarRow = 1
	tableTop   = 2
	headerRow  = tableTop + 1
	bodyTop    = tableTop + 3
)

const (
	newRowLabel = "+ New Row"
	tabGap      = 1
)

// span is a half-open range of screen columns
type span struct {
	start, end int
}

func (s span) contains(x int) bool {
	return x >= s.start && x < s.end
}

// tabSpans returns the screen columns covered by each filter tab
func (m Model) tabSpans() []span {
	filters := grid.Filters()
	spans := make([]span, 0, len(filters))
	x := 0
	for _, f := range filters {
		w := lipgloss.Width(m.styles.Tab.Render(f.String()))
		spans = append(spans, span{start: x, end: x + w})
		x += w + tabGap
	}
	return spans
}

// newRowSpan returns the screen columns of the New Row button
func (m Model) newRowSpan() span {
	return span{start: 0, end: lipgloss.Width(m.styles.Button.Render(newRowLabel))}
}

// columnSpan is the content area of one table column. The divider to its
// right sits at end.
type columnSpan struct {
	column grid.Column
	span
}

// columnSpans lays the columns out left to right after the outer border,
// with a one-cell divider between columns
func (m Model) columnSpans() []columnSpan {
	cols := grid.Columns()
	spans := make([]columnSpan, 0, len(cols))
	x := 1
	for _, c := range cols {
		w := m.grid.ColumnWidth(c)
		spans = append(spans, columnSpan{column: c, span: span{start: x, end: x + w}})
		x += w + 1
	}
	return spans
}

// columnAt returns the column whose content area contains x
func (m Model) columnAt(x int) (grid.Column, bool) {
	for _, cs := range m.columnSpans() {
		if cs.contains(x) {
			return cs.column, true
		}
	}
	return grid.ColumnName, false
}

// dividerAt returns the column whose right-hand divider is at x, and the
// screen column where that column starts
func (m Model) dividerAt(x int) (grid.Column, int, bool) {
	for _, cs := range m.columnSpans() {
		if x == cs.end {
			return cs.column, cs.start, true
		}
	}
	return grid.ColumnName, 0, false
}

// viewRowAt maps a screen row inside the table body to a view index,
// following the order the table renders in
func (m Model) viewRowAt(y int) (int, bool) {
	pos := y - bodyTop
	order := m.renderedOrder()
	if pos < 0 || pos >= len(order) {
		return 0, false
	}
	return order[pos], true
}

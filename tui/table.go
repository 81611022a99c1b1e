package tui

import (
	"github.com/evertras/bubble-table/table"

	"github.com/young1lin/gridsheet/internal/grid"
	"github.com/young1lin/gridsheet/internal/render"
)

// viewIndexKey carries each row's view index through the table's sort.
// It has no column, so it is never rendered.
const viewIndexKey = "_view_index"

// sortKey is the hidden row key holding the stored value of c. The table
// sorts on it, so the selected and editing cells sort by record value
// rather than by the text they display.
func sortKey(c grid.Column) string {
	return "_sort_" + c.Key()
}

// buildTable renders the current view into a bubble-table model. Sorting
// is done by the table on the rendered rows; the dataset is untouched.
func (m Model) buildTable() table.Model {
	columns := make([]table.Column, 0, len(grid.Columns()))
	for _, c := range grid.Columns() {
		title := c.Label()
		if m.sort.dir != sortNone && m.sort.column == c {
			if m.sort.dir == sortAsc {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		columns = append(columns, table.NewColumn(c.Key(), title, m.grid.ColumnWidth(c)))
	}

	sel := m.grid.Selection()
	view := m.grid.View()
	rows := make([]table.Row, 0, len(view))
	for i, r := range view {
		data := table.RowData{viewIndexKey: i}
		for _, c := range grid.Columns() {
			data[c.Key()] = m.cellValue(*r, c, i == sel.Row && c == sel.Column)
			data[sortKey(c)] = r.Value(c)
		}
		rows = append(rows, table.NewRow(data))
	}

	t := table.New(columns).
		WithRows(rows).
		Focused(false).
		WithFooterVisibility(false).
		HeaderStyle(m.styles.Header).
		HighlightStyle(m.styles.Cell).
		BorderRounded().
		WithBaseStyle(m.styles.Base)

	switch m.sort.dir {
	case sortAsc:
		t = t.SortByAsc(sortKey(m.sort.column))
	case sortDesc:
		t = t.SortByDesc(sortKey(m.sort.column))
	}

	return t
}

// cellValue returns the table cell for column c of r. The selected cell is
// styled; while editing it shows the tail of the editor text and a caret.
func (m Model) cellValue(r grid.Record, c grid.Column, selected bool) any {
	value := r.Value(c)
	if !selected {
		return value
	}
	if m.editing {
		text := render.TailFit(m.editor.Value()+"▏", m.grid.ColumnWidth(c))
		return table.NewStyledCell(text, m.styles.EditingCell)
	}
	return table.NewStyledCell(value, m.styles.SelectedCell)
}

// renderedOrder returns the view indexes in the order the table shows them
func (m Model) renderedOrder() []int {
	t := m.buildTable()
	visible := t.GetVisibleRows()
	order := make([]int, 0, len(visible))
	for _, row := range visible {
		if i, ok := row.Data[viewIndexKey].(int); ok {
			order = append(order, i)
		}
	}
	return order
}

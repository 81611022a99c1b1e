package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/gridsheet/internal/grid"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditingKey(msg)
		}
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case ConfigReloadedMsg:
		if msg.Config == nil {
			return m, nil
		}
		m.styles = StylesFromTheme(msg.Config.Theme)
		m.grid.SetResizeBounds(msg.Config.Columns.MinWidth, msg.Config.Columns.ResizeOffset)
		m.err = nil
		m.notice = "config reloaded"
		m.logger.Info("config reloaded", "minWidth", msg.Config.Columns.MinWidth)
		return m, nil

	case ConfigErrorMsg:
		m.err = msg.Err
		m.logger.Warn("config reload failed", "err", msg.Err)
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input while no cell editor is open
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.endDrag()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.grid.MoveSelection(grid.Up)
	case key.Matches(msg, m.keys.Down):
		m.grid.MoveSelection(grid.Down)
	case key.Matches(msg, m.keys.Left):
		m.grid.MoveSelection(grid.Left)
	case key.Matches(msg, m.keys.Right):
		m.grid.MoveSelection(grid.Right)

	case key.Matches(msg, m.keys.Edit):
		if m.grid.Selection().Column == grid.ColumnStatus {
			m.toggleStatus()
			return m, nil
		}
		return m.startEditing()

	case key.Matches(msg, m.keys.Toggle):
		if m.grid.Selection().Column == grid.ColumnStatus {
			m.toggleStatus()
		}

	case key.Matches(msg, m.keys.NewRow):
		m.addRow()

	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(stepFilter(m.grid.Filter(), 1))
	case key.Matches(msg, m.keys.PrevFilter):
		m.setFilter(stepFilter(m.grid.Filter(), -1))
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(grid.FilterAll)
	case key.Matches(msg, m.keys.FilterOn):
		m.setFilter(grid.FilterActive)
	case key.Matches(msg, m.keys.FilterOff):
		m.setFilter(grid.FilterInactive)

	case key.Matches(msg, m.keys.Sort):
		m.sort = m.sort.next(m.grid.Selection().Column)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleEditingKey routes keys to the cell editor. Every change is written
// straight to the grid; up/down close the editor and move.
func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Done):
		m.stopEditing()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.stopEditing()
		m.grid.MoveSelection(grid.Up)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.stopEditing()
		m.grid.MoveSelection(grid.Down)
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if value := m.editor.Value(); value != before {
		m.applyEdit(value)
	}
	return m, cmd
}

// handleMouseMsg implements tab clicks, the New Row button, header sort,
// column resize drags and cell selection
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if m.drag != nil {
			m.drag.Move(msg.X)
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag != nil {
			col := m.drag.Column()
			m.endDrag()
			m.logger.Debug("column resized", "column", col.Key(), "width", m.grid.ColumnWidth(col))
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch {
	case msg.Y == tabRow:
		for i, s := range m.tabSpans() {
			if s.contains(msg.X) {
				m.setFilter(grid.Filters()[i])
				break
			}
		}

	case msg.Y == toolbarRow:
		if m.newRowSpan().contains(msg.X) {
			m.addRow()
		}

	case msg.Y >= tableTop && msg.Y < bodyTop:
		if col, origin, ok := m.dividerAt(msg.X); ok {
			m.beginDrag(col, origin)
			break
		}
		if msg.Y == headerRow {
			if col, ok := m.columnAt(msg.X); ok {
				m.sort = m.sort.next(col)
			}
		}

	case msg.Y >= bodyTop:
		row, ok := m.viewRowAt(msg.Y)
		if !ok {
			break
		}
		col, ok := m.columnAt(msg.X)
		if !ok {
			break
		}
		m.stopEditing()
		m.grid.Select(row, col)
	}

	return m, nil
}

func (m *Model) beginDrag(col grid.Column, origin int) {
	// a release outside the window never arrives; drop the stale drag
	m.endDrag()
	drag, err := m.grid.BeginResize(col, origin)
	if err != nil {
		m.logger.Warn("resize not started", "column", col.Key(), "err", err)
		return
	}
	m.drag = drag
}

func (m *Model) endDrag() {
	if m.drag == nil {
		return
	}
	m.drag.End()
	m.drag = nil
}

func (m *Model) setFilter(f grid.Filter) {
	m.stopEditing()
	m.grid.SetFilter(f)
	m.notice = ""
}

func (m *Model) addRow() {
	idx := m.grid.AddRow()
	m.notice = ""
	m.logger.Debug("row added", "index", idx)
}

func (m *Model) toggleStatus() {
	rec, ok := m.grid.SelectedRecord()
	if !ok {
		return
	}
	m.grid.EditCell(m.grid.Selection().Row, grid.StatusEdit(rec.Status.Toggle()))
}

func (m Model) startEditing() (tea.Model, tea.Cmd) {
	rec, ok := m.grid.SelectedRecord()
	if !ok {
		return m, nil
	}
	m.editing = true
	m.editor.SetValue(rec.Value(m.grid.Selection().Column))
	m.editor.CursorEnd()
	m.editor.Width = m.grid.ColumnWidth(m.grid.Selection().Column)
	focus := m.editor.Focus()
	return m, tea.Batch(focus, textinput.Blink)
}

func (m *Model) stopEditing() {
	if !m.editing {
		return
	}
	m.editing = false
	m.editor.Blur()
}

// applyEdit writes the editor value to the selected cell
func (m *Model) applyEdit(value string) {
	sel := m.grid.Selection()
	edit, err := grid.EditFor(sel.Column, value)
	if err != nil {
		m.logger.Warn("edit rejected", "column", sel.Column.Key(), "err", err)
		return
	}
	m.grid.EditCell(sel.Row, edit)
}

// stepFilter moves through the tabs, wrapping at either end
func stepFilter(f grid.Filter, step int) grid.Filter {
	filters := grid.Filters()
	i := int(f) + step
	n := len(filters)
	return filters[((i%n)+n)%n]
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"

	"github.com/young1lin/gridsheet/internal/config"
	"github.com/young1lin/gridsheet/internal/grid"
	"github.com/young1lin/gridsheet/internal/render"
)

func newTestModel() Model {
	g := grid.New(grid.SampleRecords(), config.DefaultConfig().GridOptions())
	return NewModel(g, DefaultStyles(), nil)
}

// send runs msg through Update and returns the resulting Model
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatal("Update() should return a Model")
	}
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := newTestModel()

	if m.Grid() == nil {
		t.Fatal("Grid() returned nil")
	}
	if m.editing {
		t.Error("NewModel().editing should be false")
	}
	if m.sort.dir != sortNone {
		t.Errorf("NewModel().sort = %+v, want none", m.sort)
	}
	if m.logger == nil {
		t.Error("NewModel() with nil logger should install a discard logger")
	}
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should return nil")
	}
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	testString := "test"
	if styles.TabActive.Render(testString) == "" {
		t.Error("DefaultStyles().TabActive should render something")
	}
	if styles.SelectedCell.Render(testString) == "" {
		t.Error("DefaultStyles().SelectedCell should render something")
	}
	if styles.Error.Render(testString) == "" {
		t.Error("DefaultStyles().Error should render something")
	}
}

func TestSortStateNext(t *testing.T) {
	var s sortState

	s = s.next(grid.ColumnName)
	if s != (sortState{grid.ColumnName, sortAsc}) {
		t.Fatalf("first activation = %+v, want name asc", s)
	}
	s = s.next(grid.ColumnName)
	if s != (sortState{grid.ColumnName, sortDesc}) {
		t.Fatalf("second activation = %+v, want name desc", s)
	}
	s = s.next(grid.ColumnName)
	if s.dir != sortNone {
		t.Fatalf("third activation = %+v, want none", s)
	}

	s = sortState{grid.ColumnName, sortDesc}.next(grid.ColumnEmail)
	if s != (sortState{grid.ColumnEmail, sortAsc}) {
		t.Errorf("other column = %+v, want email asc", s)
	}
}

func TestStepFilter(t *testing.T) {
	tests := []struct {
		from grid.Filter
		step int
		want grid.Filter
	}{
		{grid.FilterAll, 1, grid.FilterActive},
		{grid.FilterInactive, 1, grid.FilterAll},
		{grid.FilterAll, -1, grid.FilterInactive},
		{grid.FilterActive, -1, grid.FilterAll},
	}
	for _, tt := range tests {
		if got := stepFilter(tt.from, tt.step); got != tt.want {
			t.Errorf("stepFilter(%v, %d) = %v, want %v", tt.from, tt.step, got, tt.want)
		}
	}
}

func TestRenderedOrderFollowsSort(t *testing.T) {
	m := newTestModel()

	if got := m.renderedOrder(); !equalInts(got, []int{0, 1, 2}) {
		t.Errorf("unsorted order = %v, want [0 1 2]", got)
	}

	m.sort = sortState{column: grid.ColumnName, dir: sortAsc}
	if got := m.renderedOrder(); !equalInts(got, []int{2, 1, 0}) {
		t.Errorf("name asc order = %v, want [2 1 0]", got)
	}

	// sorting is view-only
	records := m.Grid().Records()
	if records[0].Name != "John Doe" || records[2].Name != "Bob Ray" {
		t.Errorf("dataset reordered by sort: %+v", records)
	}
}

func TestEditingCellKeepsSortPosition(t *testing.T) {
	opts := config.DefaultConfig().GridOptions()
	opts.Widths[grid.ColumnName] = 6
	m := NewModel(grid.New(grid.SampleRecords(), opts), DefaultStyles(), nil)

	m.Grid().Select(2, grid.ColumnName)
	m.sort = sortState{column: grid.ColumnName, dir: sortAsc}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runes("x"))

	if !m.editing {
		t.Fatal("enter should open the editor")
	}
	cell, ok := m.cellValue(*m.Grid().View()[2], grid.ColumnName, true).(table.StyledCell)
	if !ok || !strings.HasPrefix(cell.Data.(string), render.Ellipsis) {
		t.Fatalf("editing cell = %#v, want text cut from the left", cell)
	}

	// Bob Rayx still sorts before Jane and John
	if got := m.renderedOrder(); !equalInts(got, []int{2, 1, 0}) {
		t.Errorf("order while editing = %v, want [2 1 0]", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

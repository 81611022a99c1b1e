package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/gridsheet/internal/grid"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestViewQuitting(t *testing.T) {
	m := newTestModel()
	m.quitting = true

	if view := m.View(); view != "" {
		t.Errorf("View() when quitting = %q, want empty", view)
	}
}

func TestViewShowsGrid(t *testing.T) {
	m := newTestModel()

	view := m.View()

	for _, want := range []string{
		"All", "Active", "Inactive",
		newRowLabel,
		"Name", "Email", "Status",
		"John Doe", "jane@example.com", "Bob Ray",
		"3 of 3 rows",
		"R1 Name: John Doe",
	} {
		if !contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestViewFollowsFilter(t *testing.T) {
	m := newTestModel()
	m = send(t, m, runes("3"))

	view := m.View()

	if contains(view, "John Doe") {
		t.Error("Inactive view should not show John Doe")
	}
	if !contains(view, "Jane Smith") {
		t.Error("Inactive view should show Jane Smith")
	}
	if !contains(view, "1 of 3 rows") {
		t.Error("toolbar should count 1 of 3 rows")
	}
}

func TestViewSortIndicator(t *testing.T) {
	m := newTestModel()
	m.sort = sortState{column: grid.ColumnEmail, dir: sortDesc}

	if !contains(m.View(), "Email ▼") {
		t.Error("View() should mark the sorted column")
	}
}

func TestViewEditingHelp(t *testing.T) {
	m := newTestModel()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !contains(m.View(), "done") {
		t.Error("editing help should list the done binding")
	}
}

func TestViewNoSelection(t *testing.T) {
	g := grid.New(nil, grid.DefaultOptions())
	m := NewModel(g, DefaultStyles(), nil)

	if !contains(m.View(), "no row selected") {
		t.Error("empty grid should report no selection")
	}
}

func TestTabSpansMatchRenderedTabs(t *testing.T) {
	m := newTestModel()

	spans := m.tabSpans()
	last := spans[len(spans)-1]

	if width := lipgloss.Width(m.renderTabs()); last.end != width {
		t.Errorf("tab spans end at %d, rendered width %d", last.end, width)
	}
}

package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/gridsheet/internal/config"
	"github.com/young1lin/gridsheet/internal/grid"
)

// sortDir is the view-only sort applied to one column
type sortDir int

const (
	sortNone sortDir = iota
	sortAsc
	sortDesc
)

// sortState is the sort the table renders with. It never reorders the dataset.
type sortState struct {
	column grid.Column
	dir    sortDir
}

// next returns the state after the header of col is activated:
// another column starts ascending, the same column goes asc, desc, off.
func (s sortState) next(col grid.Column) sortState {
	if s.dir == sortNone || s.column != col {
		return sortState{column: col, dir: sortAsc}
	}
	if s.dir == sortAsc {
		return sortState{column: col, dir: sortDesc}
	}
	return sortState{}
}

// Model represents the application state
type Model struct {
	grid *grid.Grid

	// Cell editor for name/email
	editor  textinput.Model
	editing bool

	// Presentation state
	sort     sortState
	drag     *grid.ResizeDrag
	width    int
	height   int
	quitting bool
	notice   string
	err      error

	keys   keyMap
	help   help.Model
	styles Styles
	logger *slog.Logger
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Button       lipgloss.Style
	Caption      lipgloss.Style
	Header       lipgloss.Style
	Base         lipgloss.Style
	Cell         lipgloss.Style
	SelectedCell lipgloss.Style
	EditingCell  lipgloss.Style
	Status       lipgloss.Style
	Muted        lipgloss.Style
	Error        lipgloss.Style
}

// DefaultStyles returns the styles for the built-in theme
func DefaultStyles() Styles {
	return StylesFromTheme(config.DefaultConfig().Theme)
}

// StylesFromTheme builds styles from configured colors
func StylesFromTheme(theme config.ThemeConfig) Styles {
	var styles Styles

	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)
	selected := lipgloss.Color(theme.Selected)
	border := lipgloss.Color(theme.Border)

	// Tabs
	styles.Tab = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("250"))

	styles.TabActive = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(accent)

	// Toolbar
	styles.Button = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("255")).
		Background(accent)

	styles.Caption = lipgloss.NewStyle().
		Foreground(muted)

	// Table
	styles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	styles.Base = lipgloss.NewStyle().
		BorderForeground(border).
		Align(lipgloss.Left)

	styles.Cell = lipgloss.NewStyle()

	styles.SelectedCell = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(selected)

	styles.EditingCell = lipgloss.NewStyle().
		Underline(true).
		Foreground(lipgloss.Color("0")).
		Background(selected)

	// Footer
	styles.Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	styles.Muted = lipgloss.NewStyle().
		Foreground(muted)

	styles.Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	return styles
}

// NewModel creates a Model over g. A nil logger discards log output.
func NewModel(g *grid.Grid, styles Styles, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 256

	return Model{
		grid:   g,
		editor: editor,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: styles,
		logger: logger,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Grid returns the grid the model edits
func (m Model) Grid() *grid.Grid {
	return m.grid
}

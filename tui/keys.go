package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding the grid responds to
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Edit       key.Binding
	Toggle     key.Binding
	Done       key.Binding
	NewRow     key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	FilterAll  key.Binding
	FilterOn   key.Binding
	FilterOff  key.Binding
	Sort       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev column")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next column")),
		Edit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle status")),
		Done:       key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),
		NewRow:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new row")),
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		FilterAll:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterOn:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		FilterOff:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "inactive")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.NewRow, k.NextFilter, k.Sort, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.Toggle, k.Done},
		{k.NewRow, k.Sort},
		{k.NextFilter, k.PrevFilter, k.FilterAll, k.FilterOn, k.FilterOff},
		{k.Help, k.Quit},
	}
}

// editingKeyMap is shown while a cell editor is open
type editingKeyMap struct {
	keyMap
}

func (k editingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Up, k.Down}
}

func (k editingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

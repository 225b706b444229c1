package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the terminal dashboard.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	Open  key.Binding // Open the detail panel, or apply the chosen status.
	Close key.Binding // Close the detail panel or leave search.

	StatusFilter   key.Binding
	PriorityFilter key.Binding
	Search         key.Binding
	ClearFilters   key.Binding
	Refresh        key.Binding

	// Detail panel: choose the new status.
	PrevStatus key.Binding
	NextStatus key.Binding

	Quit key.Binding
}

// DefaultKeyMap uses vim-style j/k alongside the arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	StatusFilter: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status filter"),
	),
	PriorityFilter: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "priority filter"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	ClearFilters: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear filters"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	PrevStatus: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev status"),
	),
	NextStatus: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next status"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// listHelp and detailHelp are the bindings shown in the help line.
func (k KeyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.StatusFilter, k.PriorityFilter, k.Search, k.ClearFilters, k.Refresh, k.Quit}
}

func (k KeyMap) detailHelp() []key.Binding {
	return []key.Binding{k.PrevStatus, k.NextStatus, k.Open, k.Close, k.Quit}
}

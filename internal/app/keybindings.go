package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for navhist.
type KeyMap struct {
	// Menu choices
	Display key.Binding
	Back    key.Binding
	Forward key.Binding
	Visit   key.Binding
	Quit    key.Binding

	// Menu cursor
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Report scrolling
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding
	Close        key.Binding

	// Extras
	CommandMode key.Binding
	CycleTheme  key.Binding
}

// DefaultKeyMap returns the default keybindings. Digits pick menu entries
// directly; the vim-style letters are aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Display: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "display history"),
		),
		Back: key.NewBinding(
			key.WithKeys("2", "H"),
			key.WithHelp("2/H", "go back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("3", "L"),
			key.WithHelp("3/L", "go forward"),
		),
		Visit: key.NewBinding(
			key.WithKeys("4", "o"),
			key.WithHelp("4/o", "visit site"),
		),
		Quit: key.NewBinding(
			key.WithKeys("5", "q"),
			key.WithHelp("5/q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "scroll up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("Ctrl+d", "half page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("Ctrl+u", "half page up"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "enter"),
			key.WithHelp("esc/q", "back to menu"),
		),
		CommandMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command mode"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rog-golang-buddies/userboard/ui/terminal/tui/cardui"
)

// keyMap defines a set of keybindings. To work for help it must satisfy
// key.Map.
type keyMap struct {
	cardui.KeyMap

	New     key.Binding
	Edit    key.Binding
	View    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.View, k.Delete, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.New, k.Edit, k.View, k.Delete},
		{k.Refresh, k.Help, k.Quit},
	}
}

var keys = keyMap{
	KeyMap: cardui.DefaultKeyMap,
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new user"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	View: key.NewBinding(
		key.WithKeys("v", "enter"),
		key.WithHelp("enter", "details"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x"),
		key.WithHelp("d", "delete"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

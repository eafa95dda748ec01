// ABOUTME: Key bindings for the jotpad terminal app.
// ABOUTME: Implements help.KeyMap so the footer can list them.

package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Select    key.Binding
	New       key.Binding
	Delete    key.Binding
	Pin       key.Binding
	Copy      key.Binding
	Light     key.Binding
	Bright    key.Binding
	About     key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Suspend   key.Binding

	Save        key.Binding
	SwitchField key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Select:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Pin:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Light:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flashlight")),
		Bright:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "brightness")),
		About:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Suspend:   key.NewBinding(key.WithKeys("ctrl+z")),

		Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SwitchField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),

		Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	}
}

// ShortHelp lists the main screen bindings.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Open, k.Select, k.Pin, k.Delete, k.About, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Select},
		{k.New, k.Delete, k.Pin, k.Copy},
		{k.Light, k.Bright, k.About, k.Back, k.Quit},
	}
}

// editHelp is the binding set shown on the edit screen.
type editHelp struct{ keys keyMap }

func (e editHelp) ShortHelp() []key.Binding {
	return []key.Binding{e.keys.SwitchField, e.keys.Save, e.keys.Back}
}

func (e editHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{e.ShortHelp()}
}

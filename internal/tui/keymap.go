package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browser keybindings; help text renders from it.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Open    key.Binding
	Back    key.Binding
	Root    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "left", "backspace"),
		key.WithHelp("h", "up a directory"),
	),
	Root: key.NewBinding(
		key.WithKeys("~"),
		key.WithHelp("~", "share root"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// helpLine renders the one-line cheat sheet.
func (k keyMap) helpLine() string {
	bindings := []key.Binding{k.Down, k.Up, k.Open, k.Back, k.Root, k.Refresh, k.Quit}
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += "  "
		}
		line += b.Help().Key + " " + b.Help().Desc
	}
	return line
}

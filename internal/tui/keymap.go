// Package tui runs the simulator in a terminal with Bubble Tea. It feeds the
// same app.Controller as the window front end.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the terminal front end.
type KeyMap struct {
	Pause key.Binding
	Clear key.Binding
	Seed  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Clear, k.Seed, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Clear, k.Seed},
		{k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/run"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Seed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random soup"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

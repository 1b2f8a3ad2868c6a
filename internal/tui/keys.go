package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	pause    key.Binding
	resume   key.Binding
	complete key.Binding
	quit     key.Binding
}

var defaultKeymap = keymap{
	pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	resume: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "resume"),
	),
	complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

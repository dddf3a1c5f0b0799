package quiz

import "charm.land/bubbles/v2/key"

// KeyMap holds the quiz screen bindings.
type KeyMap struct {
	True     key.Binding
	False    key.Binding
	Previous key.Binding
	Next     key.Binding
	Finish   key.Binding
	Cheat    key.Binding
}

// DefaultKeyMap returns the default quiz bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		True: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "True"),
		),
		False: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "False"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "left", "h"),
			key.WithHelp("←/p", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right", "l"),
			key.WithHelp("→/n", "Next"),
		),
		Finish: key.NewBinding(
			key.WithKeys("enter", "n"),
			key.WithHelp("Enter", "Finish"),
		),
		Cheat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cheat"),
		),
	}
}

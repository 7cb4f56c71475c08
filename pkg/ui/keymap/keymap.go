package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap is a map of key bindings for the UI.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Back     key.Binding
	Left     key.Binding
	Right    key.Binding
	Drawer   key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Navigate key.Binding

	GotoTop    key.Binding
	GotoBottom key.Binding
}

// DefaultKeyMap returns the default key map.
func DefaultKeyMap() *KeyMap {
	km := new(KeyMap)

	km.Quit = key.NewBinding(
		key.WithKeys(
			"ctrl+c",
			"q",
		),
		key.WithHelp(
			"q",
			"quit",
		),
	)

	km.Help = key.NewBinding(
		key.WithKeys(
			"?",
		),
		key.WithHelp(
			"?",
			"toggle help",
		),
	)

	km.Back = key.NewBinding(
		key.WithKeys(
			"esc",
			"backspace",
		),
		key.WithHelp(
			"esc",
			"back",
		),
	)

	km.Left = key.NewBinding(
		key.WithKeys(
			"[",
		),
		key.WithHelp(
			"[",
			"left action",
		),
	)

	km.Right = key.NewBinding(
		key.WithKeys(
			"]",
		),
		key.WithHelp(
			"]",
			"right action",
		),
	)

	km.Drawer = key.NewBinding(
		key.WithKeys(
			"tab",
		),
		key.WithHelp(
			"tab",
			"toggle drawer",
		),
	)

	km.Up = key.NewBinding(
		key.WithKeys(
			"up",
			"k",
		),
		key.WithHelp(
			"↑/k",
			"up",
		),
	)

	km.Down = key.NewBinding(
		key.WithKeys(
			"down",
			"j",
		),
		key.WithHelp(
			"↓/j",
			"down",
		),
	)

	km.Select = key.NewBinding(
		key.WithKeys(
			"enter",
		),
		key.WithHelp(
			"enter",
			"open screen",
		),
	)

	km.Navigate = key.NewBinding(
		key.WithKeys(
			"up",
			"down",
			"k",
			"j",
		),
		key.WithHelp(
			"↑↓",
			"navigate",
		),
	)

	km.GotoTop = key.NewBinding(
		key.WithKeys(
			"home",
			"g",
		),
		key.WithHelp(
			"g/home",
			"go to top",
		),
	)

	km.GotoBottom = key.NewBinding(
		key.WithKeys(
			"end",
			"G",
		),
		key.WithHelp(
			"G/end",
			"go to bottom",
		),
	)

	return km
}

package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	Yes      key.Binding
	No       key.Binding
	EditNote key.Binding
	Save     key.Binding
	Range    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "answer yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "answer no"),
		),
		EditNote: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit note"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Range: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "cycle range"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Down, k.Save, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.Up, k.Down},
		{k.Yes, k.No, k.EditNote},
		{k.Save, k.Range, k.Quit},
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Accept key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Accept: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y/enter", "say yes")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Accept, k.Quit}}
}

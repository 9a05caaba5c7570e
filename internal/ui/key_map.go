package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	prev key.Binding
	next key.Binding
	open key.Binding
	quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		open: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open preview")),
		quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.prev, k.next, k.open, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.prev, k.next},
		{k.open, k.quit},
	}
}

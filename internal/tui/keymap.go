package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Next      key.Binding
	Previous  key.Binding
	Flip      key.Binding
	Learned   key.Binding
	Add       key.Binding
	Remove    key.Binding
	Filter    key.Binding
	Sort      key.Binding
	Search    key.Binding
	ViewMode  key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	NextField key.Binding
	GridLeft  key.Binding
	GridRight key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:      key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next")),
		Previous:  key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "previous")),
		Flip:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "flip")),
		Learned:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "toggle learned")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add card")),
		Remove:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete card")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "hide learned")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort A-Z")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ViewMode:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid/single")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		GridLeft:  key.NewBinding(key.WithKeys("left", "h")),
		GridRight: key.NewBinding(key.WithKeys("right", "l")),
	}
}

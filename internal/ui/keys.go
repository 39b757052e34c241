package ui

import (
	"github.com/atomicstack/popup-select/internal/combobox"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Enter     key.Binding
	Space     key.Binding
	Escape    key.Binding
	Backspace key.Binding
	Tab       key.Binding
	Create    key.Binding
	Clear     key.Binding
	Submit    key.Binding
	Quit      key.Binding

	ClearSearch  key.Binding
	DeleteWord   key.Binding
	CaretStart   key.Binding
	CaretEnd     key.Binding
	CaretLeft    key.Binding
	CaretRight   key.Binding
	WordBackward key.Binding
	WordForward  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "first")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "last")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Space:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "open")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "remove")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "close")),
		Create:    key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "add")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "done")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		ClearSearch:  key.NewBinding(key.WithKeys("ctrl+u")),
		DeleteWord:   key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace")),
		CaretStart:   key.NewBinding(key.WithKeys("ctrl+a")),
		CaretEnd:     key.NewBinding(key.WithKeys("ctrl+e")),
		CaretLeft:    key.NewBinding(key.WithKeys("left", "ctrl+b")),
		CaretRight:   key.NewBinding(key.WithKeys("right", "ctrl+f")),
		WordBackward: key.NewBinding(key.WithKeys("alt+b", "alt+left")),
		WordForward:  key.NewBinding(key.WithKeys("alt+f", "alt+right")),
	}
}

// comboboxKey maps a terminal key to the key the state machine understands.
func (k keyMap) comboboxKey(msg tea.KeyMsg) combobox.Key {
	switch {
	case key.Matches(msg, k.Up):
		return combobox.KeyArrowUp
	case key.Matches(msg, k.Down):
		return combobox.KeyArrowDown
	case key.Matches(msg, k.PageUp):
		return combobox.KeyPageUp
	case key.Matches(msg, k.PageDown):
		return combobox.KeyPageDown
	case key.Matches(msg, k.Enter):
		return combobox.KeyEnter
	case key.Matches(msg, k.Space):
		return combobox.KeySpace
	case key.Matches(msg, k.Escape):
		return combobox.KeyEscape
	case key.Matches(msg, k.Backspace):
		return combobox.KeyBackspace
	case key.Matches(msg, k.Tab):
		return combobox.KeyTab
	}
	return combobox.KeyNone
}

func (k keyMap) footerHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Escape, k.Clear, k.Submit, k.Quit}
}

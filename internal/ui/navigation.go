package ui

import (
	"github.com/atomicstack/popup-select/internal/combobox"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.abort()
		return nil
	case key.Matches(keyMsg, m.keys.Submit):
		m.submit()
		return nil
	case key.Matches(keyMsg, m.keys.Clear):
		m.machine.Clear()
		return nil
	case key.Matches(keyMsg, m.keys.Create) && m.creatable():
		m.machine.CreateOption()
		return nil
	}
	if m.handleClosedMenuKey(keyMsg) {
		return nil
	}
	if m.machine.IsOpen() {
		switch {
		case key.Matches(keyMsg, m.keys.Home):
			m.machine.FocusFirst()
			return nil
		case key.Matches(keyMsg, m.keys.End):
			m.machine.FocusLast()
			return nil
		}
	}
	if k := m.keys.comboboxKey(keyMsg); k != combobox.KeyNone {
		ev := combobox.NewKeyEvent(k)
		m.machine.HandleKey(ev)
		m.doc.DispatchKey(ev)
		if ev.DefaultPrevented() {
			return nil
		}
	}
	m.handleTextInput(keyMsg)
	return nil
}

// handleClosedMenuKey gives enter and escape their program-level meaning
// while the menu is closed: enter confirms, escape clears a leftover search
// and otherwise aborts.
func (m *Model) handleClosedMenuKey(msg tea.KeyMsg) bool {
	if m.machine.IsOpen() {
		return false
	}
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.submit()
		return true
	case key.Matches(msg, m.keys.Escape):
		if m.search.Text != "" {
			before := m.search.CursorPos()
			m.search.Clear()
			m.applySearch(before)
			return true
		}
		m.abort()
		return true
	}
	return false
}

func (m *Model) handleFocusMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.FocusMsg); !ok {
		return nil
	}
	m.inputFocused = true
	m.machine.Focus()
	return nil
}

func (m *Model) handleBlurMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.BlurMsg); !ok {
		return nil
	}
	m.inputFocused = false
	m.machine.Blur()
	return nil
}

func (m *Model) focusedInput() bool {
	return m.inputFocused
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.viewport.EnsureVisible(m.machine.FocusedIndex(), len(m.machine.Filtered()), m.maxVisibleItems())
	return nil
}

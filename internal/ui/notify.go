package ui

import (
	"fmt"

	"github.com/atomicstack/popup-select/internal/combobox"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) enqueue(n combobox.Notification) {
	m.pending = append(m.pending, n)
}

// flushNotifications publishes everything the machine emitted during the
// last input. It runs after the machine call returned, so handlers may feed
// values back without re-entering a transition.
func (m *Model) flushNotifications() tea.Cmd {
	var cmds []tea.Cmd
	for len(m.pending) > 0 {
		batch := m.pending
		m.pending = nil
		for _, n := range batch {
			if cmd := m.bus.Publish(n); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) registerNotifications() {
	m.bus.Subscribe(combobox.ValueChanged[string]{}, func(n combobox.Notification) tea.Cmd {
		v := n.(combobox.ValueChanged[string]).Value
		m.value = v
		m.machine.SetValue(v)
		return nil
	})
	m.bus.Subscribe(combobox.OptionCreated{}, func(n combobox.Notification) tea.Cmd {
		m.setInfo(fmt.Sprintf("Added %q", n.(combobox.OptionCreated).Label))
		return nil
	})
	m.bus.Subscribe(combobox.OptionDeselected[string]{}, func(n combobox.Notification) tea.Cmd {
		if o := n.(combobox.OptionDeselected[string]).Option; o != nil {
			m.setInfo(fmt.Sprintf("Removed %q", m.cfg.Projection.LabelOf(*o)))
		} else {
			m.setInfo("Cleared selection")
		}
		return nil
	})
	m.bus.Subscribe(combobox.MenuOpened{}, func(combobox.Notification) tea.Cmd {
		m.viewport.EnsureVisible(m.machine.FocusedIndex(), len(m.machine.Filtered()), m.maxVisibleItems())
		return nil
	})
	m.bus.Subscribe(combobox.MenuClosed{}, func(combobox.Notification) tea.Cmd {
		m.viewport.Reset()
		return nil
	})
	m.bus.Subscribe(combobox.SearchChanged{}, func(combobox.Notification) tea.Cmd {
		m.errMsg = ""
		m.viewport.EnsureVisible(m.machine.FocusedIndex(), len(m.machine.Filtered()), m.maxVisibleItems())
		return nil
	})
}

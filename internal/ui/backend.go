package ui

import (
	"github.com/atomicstack/popup-select/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil && !m.done {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	if m.cfg.IsLoading {
		m.setLoading(false)
	}
	return nil
}

// applyBackendEvent routes a watcher event through the dispatcher and pushes
// the resulting store state into the machine.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.LoadingChanged {
		m.setLoading(m.store.Loading())
	}
	if err := m.store.Err(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if res.OptionsUpdated {
		m.errMsg = ""
		m.machine.SetOptions(m.store.Options())
	}
}

func (m *Model) setLoading(loading bool) {
	cfg := m.machine.Config()
	cfg.IsLoading = loading
	m.cfg = cfg
	m.machine.SetConfig(cfg)
}

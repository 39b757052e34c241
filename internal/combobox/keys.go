package combobox

// Key enumerates the keys the machine reacts to. Text entry arrives through
// InputText instead.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeySpace
	KeyEscape
	KeyBackspace
	KeyTab
	KeyArrowUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyArrowUp:   "up",
	KeyArrowDown: "down",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyEvent travels from the input to the document. A handler that consumes
// the key calls PreventDefault so later handlers and the host's default
// text handling skip it. Once a focused input has seen the event, only that
// instance's document listener acts on it.
type KeyEvent struct {
	Key       Key
	prevented bool
	target    string
}

// NewKeyEvent wraps k.
func NewKeyEvent(k Key) *KeyEvent {
	return &KeyEvent{Key: k}
}

// PreventDefault marks the event as consumed.
func (e *KeyEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a handler consumed the event.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.prevented
}

// HandleKey processes a keydown aimed at the focused text input. It only
// opens and closes the menu; navigation and selection happen in the
// document listener registered by Mount.
func (m *Machine[V]) HandleKey(ev *KeyEvent) {
	if ev == nil {
		return
	}
	m.transition(func() {
		if !m.inputFocused {
			return
		}
		ev.target = m.uid
		if m.cfg.IsDisabled {
			return
		}
		switch ev.Key {
		case KeyTab:
			m.closeMenu(m.cfg.ClearSearchOnClose)
		case KeySpace:
			if !m.open && m.search == "" {
				ev.PreventDefault()
				m.openMenu()
			}
		case KeyArrowUp, KeyArrowDown:
			if !m.open {
				ev.PreventDefault()
				m.openMenu()
			}
		}
	})
}

func (m *Machine[V]) handleDocumentKey(ev *KeyEvent) {
	if !m.open || m.cfg.IsDisabled || ev.DefaultPrevented() {
		return
	}
	if ev.target != "" && ev.target != m.uid {
		return
	}
	switch ev.Key {
	case KeyArrowDown:
		ev.PreventDefault()
		m.focused = nextEnabled(m.filtered, m.focused)
	case KeyArrowUp:
		ev.PreventDefault()
		m.focused = prevEnabled(m.filtered, m.focused)
	case KeyPageDown:
		ev.PreventDefault()
		m.focused = lastEnabled(m.filtered)
	case KeyPageUp:
		ev.PreventDefault()
		m.focused = firstEnabled(m.filtered)
	case KeyEnter:
		ev.PreventDefault()
		if o, ok := m.focusedOption(); ok {
			m.setOption(o)
		} else if m.cfg.IsTaggable && m.search != "" {
			m.createOption()
		}
	case KeySpace:
		if m.search != "" {
			return
		}
		ev.PreventDefault()
		if o, ok := m.focusedOption(); ok {
			m.setOption(o)
		}
	case KeyEscape:
		ev.PreventDefault()
		m.closeMenu(true)
	case KeyBackspace:
		if m.search == "" && !m.value.IsEmpty() {
			ev.PreventDefault()
			m.removeLast()
		}
	}
}

package combobox

import "github.com/atomicstack/popup-select/internal/option"

func firstEnabled[V comparable](opts []option.Option[V]) int {
	for i, o := range opts {
		if !o.Disabled {
			return i
		}
	}
	return -1
}

func lastEnabled[V comparable](opts []option.Option[V]) int {
	for i := len(opts) - 1; i >= 0; i-- {
		if !opts[i].Disabled {
			return i
		}
	}
	return -1
}

func nextEnabled[V comparable](opts []option.Option[V], current int) int {
	for i := current + 1; i < len(opts); i++ {
		if i >= 0 && !opts[i].Disabled {
			return i
		}
	}
	return firstEnabled(opts)
}

func prevEnabled[V comparable](opts []option.Option[V], current int) int {
	start := current - 1
	if start >= len(opts) {
		start = len(opts) - 1
	}
	for i := start; i >= 0; i-- {
		if !opts[i].Disabled {
			return i
		}
	}
	return lastEnabled(opts)
}

// FocusNext moves focus to the next enabled option, wrapping to the first.
func (m *Machine[V]) FocusNext() {
	m.transition(func() {
		if m.open {
			m.focused = nextEnabled(m.filtered, m.focused)
		}
	})
}

// FocusPrev moves focus to the previous enabled option, wrapping to the last.
func (m *Machine[V]) FocusPrev() {
	m.transition(func() {
		if m.open {
			m.focused = prevEnabled(m.filtered, m.focused)
		}
	})
}

// FocusFirst moves focus to the first enabled option.
func (m *Machine[V]) FocusFirst() {
	m.transition(func() {
		if m.open {
			m.focused = firstEnabled(m.filtered)
		}
	})
}

// FocusLast moves focus to the last enabled option.
func (m *Machine[V]) FocusLast() {
	m.transition(func() {
		if m.open {
			m.focused = lastEnabled(m.filtered)
		}
	})
}

// HoverOption follows the pointer onto an enabled row.
func (m *Machine[V]) HoverOption(index int) {
	m.transition(func() {
		if !m.open || m.cfg.IsDisabled || index < 0 || index >= len(m.filtered) {
			return
		}
		if m.filtered[index].Disabled {
			return
		}
		m.focused = index
	})
}

func (m *Machine[V]) autoFocus() {
	if !m.cfg.ShouldAutofocusOption {
		m.focused = -1
		return
	}
	m.focused = firstEnabled(m.filtered)
}

func (m *Machine[V]) resetFocus() {
	m.focused = -1
}

func (m *Machine[V]) clampFocus() {
	if m.focused < -1 || m.focused >= len(m.filtered) {
		m.focused = -1
	}
}

func (m *Machine[V]) focusedOption() (option.Option[V], bool) {
	if m.focused < 0 || m.focused >= len(m.filtered) {
		return option.Option[V]{}, false
	}
	return m.filtered[m.focused], true
}

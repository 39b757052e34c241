package combobox

import "fmt"

// A11y mirrors the ARIA attributes of the combobox input.
type A11y struct {
	Role             string
	ListboxID        string
	Expanded         bool
	Multiselectable  bool
	Disabled         bool
	ActiveDescendant string
}

// A11y returns the current accessibility view.
func (m *Machine[V]) A11y() A11y {
	a := A11y{
		Role:            "combobox",
		ListboxID:       m.ListboxID(),
		Expanded:        m.open,
		Multiselectable: m.cfg.IsMulti,
		Disabled:        m.cfg.IsDisabled,
	}
	if m.open && m.focused >= 0 {
		a.ActiveDescendant = m.OptionID(m.focused)
	}
	return a
}

// ListboxID returns the id of the menu element.
func (m *Machine[V]) ListboxID() string {
	return fmt.Sprintf("select-%s-listbox", m.uid)
}

// OptionID returns the id of the filtered row at index.
func (m *Machine[V]) OptionID(index int) string {
	return fmt.Sprintf("select-%s-option-%d", m.uid, index)
}

package combobox

// PointerEvent is a pointer-down somewhere on the page.
type PointerEvent struct {
	X, Y int
}

// Region answers whether a point belongs to an instance (its control or its
// open menu). The presentation layer owns the geometry.
type Region interface {
	Contains(x, y int) bool
}

// RegionFunc adapts a function to Region.
type RegionFunc func(x, y int) bool

// Contains implements Region.
func (f RegionFunc) Contains(x, y int) bool {
	return f(x, y)
}

// PointerDownInput handles a pointer-down on the text input. It opens a
// closed menu and closes an open one unless the user is searching.
func (m *Machine[V]) PointerDownInput() {
	m.transition(func() {
		if m.cfg.IsDisabled {
			return
		}
		switch {
		case !m.open:
			m.openMenu()
		case m.search == "":
			m.closeMenu(m.cfg.ClearSearchOnClose)
		}
	})
}

// ClickToggle handles the dropdown affordance.
func (m *Machine[V]) ClickToggle() {
	m.Toggle()
}

// ClickOption commits the enabled filtered option at index.
func (m *Machine[V]) ClickOption(index int) {
	m.transition(func() {
		if m.cfg.IsDisabled || index < 0 || index >= len(m.filtered) {
			return
		}
		m.setOption(m.filtered[index])
	})
}

// PointerOutside closes the menu when the host reports a pointer-down outside
// the control and menu.
func (m *Machine[V]) PointerOutside(outside bool) {
	if !outside {
		return
	}
	m.transition(func() {
		m.closeMenu(m.cfg.ClearSearchOnClose)
	})
}

func (m *Machine[V]) handleDocumentPointer(ev PointerEvent) {
	if !m.open {
		return
	}
	if m.region != nil && m.region.Contains(ev.X, ev.Y) {
		return
	}
	m.closeMenu(m.cfg.ClearSearchOnClose)
}

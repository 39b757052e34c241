package combobox

import (
	"fmt"

	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/option"
)

// SetOption commits o. Disabled options are ignored; a multi-selection never
// receives the same value twice.
func (m *Machine[V]) SetOption(o option.Option[V]) {
	m.transition(func() {
		if m.cfg.IsDisabled {
			return
		}
		m.setOption(o)
	})
}

// RemoveOption drops o from the selection.
func (m *Machine[V]) RemoveOption(o option.Option[V]) {
	m.transition(func() {
		if m.cfg.IsDisabled {
			return
		}
		m.removeOption(o)
	})
}

// Clear empties the selection. It does nothing when the widget is not
// clearable, is loading, or has nothing selected.
func (m *Machine[V]) Clear() {
	m.transition(func() {
		if !m.canClear() {
			return
		}
		var removed *option.Option[V]
		if !m.cfg.IsMulti {
			if v, ok := m.value.Get(); ok {
				o := m.optionFor(v)
				removed = &o
			}
		}
		m.propose(m.emptyValue())
		events.Select.Cleared(m.uid)
		m.emit(OptionDeselected[V]{Option: removed})
	})
}

// CreateOption turns the current search text into a new option.
func (m *Machine[V]) CreateOption() {
	m.transition(func() {
		if m.cfg.IsDisabled {
			return
		}
		m.createOption()
	})
}

// ClickRemove handles the remove affordance on a selected tag.
func (m *Machine[V]) ClickRemove(o option.Option[V]) {
	m.RemoveOption(o)
}

func (m *Machine[V]) canClear() bool {
	return m.cfg.IsClearable && !m.cfg.IsDisabled && !m.cfg.IsLoading && !m.value.IsEmpty()
}

func (m *Machine[V]) setOption(o option.Option[V]) {
	if o.Disabled {
		return
	}
	v := m.cfg.Projection.ValueOf(o)
	if m.cfg.IsMulti {
		if m.value.Contains(v) {
			return
		}
		m.propose(m.value.with(v))
	} else if cur, ok := m.value.Get(); !ok || cur != v {
		m.propose(Single(v))
	}
	events.Select.Selected(m.uid, m.cfg.Projection.LabelOf(o))
	m.emit(OptionSelected[V]{Option: o})
	if m.cfg.CloseOnSelect {
		m.closeMenu(true)
	}
}

func (m *Machine[V]) removeOption(o option.Option[V]) {
	m.removeValue(m.cfg.Projection.ValueOf(o), o)
}

func (m *Machine[V]) removeValue(v V, o option.Option[V]) {
	if m.cfg.IsMulti {
		if !m.value.Contains(v) {
			return
		}
		m.propose(m.value.without(v))
	} else {
		if m.value.IsEmpty() {
			return
		}
		m.propose(None[V]())
	}
	events.Select.Deselected(m.uid, m.cfg.Projection.LabelOf(o))
	m.emit(OptionDeselected[V]{Option: &o})
}

func (m *Machine[V]) removeLast() {
	last, ok := m.value.Last()
	if !ok {
		return
	}
	m.removeValue(last, m.optionFor(last))
}

func (m *Machine[V]) createOption() {
	if !m.cfg.IsTaggable || m.search == "" {
		return
	}
	label := m.search
	for _, o := range m.filtered {
		if m.cfg.Projection.LabelOf(o) == label {
			return
		}
	}
	var created option.Option[V]
	if m.cfg.CreateOption != nil {
		created = m.cfg.CreateOption(label)
	} else {
		v, ok := any(label).(V)
		if !ok {
			var zero V
			m.warn(fmt.Sprintf("cannot create option %q: value type %T needs a CreateOption hook", label, zero))
			return
		}
		created = option.Option[V]{Label: label, Value: v}
	}
	m.setOption(created)
	events.Select.Created(m.uid, label)
	m.emit(OptionCreated{Label: label})
	m.setSearch("")
}

// propose records next as the current value until the host confirms one.
func (m *Machine[V]) propose(next Value[V]) {
	m.value = next
	m.emit(ValueChanged[V]{Value: next})
	m.refresh(false)
}

func (m *Machine[V]) emptyValue() Value[V] {
	if m.cfg.IsMulti {
		return List[V]()
	}
	return None[V]()
}

// optionFor finds the option holding v, falling back to a bare option when
// the value is not among the known options.
func (m *Machine[V]) optionFor(v V) option.Option[V] {
	if idx := m.cfg.Projection.IndexOf(m.options, v); idx >= 0 {
		return m.options[idx]
	}
	if idx := m.cfg.Projection.IndexOf(m.cfg.DisplayedOptions, v); idx >= 0 {
		return m.cfg.DisplayedOptions[idx]
	}
	return option.Option[V]{Label: fmt.Sprint(v), Value: v}
}

func (m *Machine[V]) coerce(v Value[V]) Value[V] {
	switch {
	case m.cfg.IsMulti && !v.IsList():
		m.warn("multi-select expects a list value; treating it as empty")
		return List[V]()
	case !m.cfg.IsMulti && v.IsList():
		m.warn("single-select received a list value; treating it as empty")
		return None[V]()
	}
	return v
}

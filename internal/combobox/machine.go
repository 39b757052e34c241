package combobox

import (
	"github.com/atomicstack/popup-select/internal/logging"
	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/option"
	"github.com/google/uuid"
)

// Machine is the combobox interaction state machine.
type Machine[V comparable] struct {
	cfg     Config[V]
	uid     string
	options []option.Option[V]
	value   Value[V]

	search       string
	open         bool
	focused      int
	inputFocused bool
	filtered     []option.Option[V]

	region   Region
	releases []func()
}

// New constructs a closed machine with an empty selection.
func New[V comparable](cfg Config[V]) *Machine[V] {
	m := &Machine[V]{
		cfg:     cfg,
		uid:     cfg.UID,
		focused: -1,
	}
	if m.uid == "" {
		m.uid = uuid.NewString()[:8]
	}
	m.value = m.emptyValue()
	if cfg.IsMenuOpen != nil {
		m.open = *cfg.IsMenuOpen
	}
	m.refresh(m.open)
	return m
}

// Mount attaches the document-level key and pointer listeners. region is
// consulted to tell outside pointer-downs apart; nil treats every
// document pointer-down as outside.
func (m *Machine[V]) Mount(doc *Document, region Region) {
	m.Unmount()
	m.region = region
	if doc == nil {
		return
	}
	m.releases = append(m.releases,
		doc.OnKey(func(ev *KeyEvent) {
			m.transition(func() { m.handleDocumentKey(ev) })
		}),
		doc.OnPointer(func(ev PointerEvent) {
			m.transition(func() { m.handleDocumentPointer(ev) })
		}),
	)
}

// Unmount releases document listeners and resets menu state and search.
func (m *Machine[V]) Unmount() {
	for _, release := range m.releases {
		release()
	}
	m.releases = nil
	m.region = nil
	m.open = m.controlled() && *m.cfg.IsMenuOpen
	m.search = ""
	m.inputFocused = false
	m.focused = -1
	m.refresh(m.open)
}

// SetOptions replaces the option snapshot.
func (m *Machine[V]) SetOptions(opts []option.Option[V]) {
	m.transition(func() {
		m.options = option.Clone(opts)
		m.refresh(false)
	})
}

// SetValue feeds the host's confirmed value back into the machine.
func (m *Machine[V]) SetValue(v Value[V]) {
	m.transition(func() {
		m.value = m.coerce(v)
		m.refresh(false)
	})
}

// SetConfig replaces the configuration. A controlled open state is
// re-derived from IsMenuOpen.
func (m *Machine[V]) SetConfig(cfg Config[V]) {
	m.transition(func() {
		if cfg.UID != "" {
			m.uid = cfg.UID
		}
		m.cfg = cfg
		m.value = m.coerce(m.value)
		switch {
		case m.controlled():
			m.setOpen(*cfg.IsMenuOpen, m.cfg.ClearSearchOnClose)
		case cfg.IsDisabled && m.open:
			m.setOpen(false, m.cfg.ClearSearchOnClose)
		}
		m.refresh(false)
	})
}

// Focus marks the text input as focused.
func (m *Machine[V]) Focus() {
	m.inputFocused = true
}

// Blur handles focus leaving the text input. With SelectOnBlur the focused
// option is committed first.
func (m *Machine[V]) Blur() {
	m.transition(func() {
		m.inputFocused = false
		if m.cfg.IsDisabled {
			return
		}
		if m.cfg.SelectOnBlur && m.open {
			if o, ok := m.focusedOption(); ok && !o.Disabled {
				m.setOption(o)
			}
		}
		m.closeMenu(m.cfg.ClearSearchOnClose)
	})
}

// InputText handles a change of the search input. It is ignored when the
// widget is not searchable.
func (m *Machine[V]) InputText(text string) {
	m.transition(func() {
		if m.cfg.IsDisabled || !m.cfg.IsSearchable || text == m.search {
			return
		}
		m.search = text
		events.Filter.Search(m.uid, text)
		m.emit(SearchChanged{Search: text})
		if text != "" && !m.open {
			m.openMenu()
		}
		m.refresh(true)
	})
}

// Open opens the menu.
func (m *Machine[V]) Open() {
	m.transition(m.openMenu)
}

// Close closes the menu.
func (m *Machine[V]) Close() {
	m.transition(func() { m.closeMenu(m.cfg.ClearSearchOnClose) })
}

// Toggle flips the menu state.
func (m *Machine[V]) Toggle() {
	m.transition(func() {
		if m.open {
			m.closeMenu(m.cfg.ClearSearchOnClose)
			return
		}
		m.openMenu()
	})
}

// Filtered returns the options currently eligible for display.
func (m *Machine[V]) Filtered() []option.Option[V] {
	return option.Clone(m.filtered)
}

// Options returns the host's option snapshot.
func (m *Machine[V]) Options() []option.Option[V] {
	return option.Clone(m.options)
}

// FocusedIndex returns the focused index into Filtered, or -1.
func (m *Machine[V]) FocusedIndex() int {
	return m.focused
}

// FocusedOption returns the focused option, if any.
func (m *Machine[V]) FocusedOption() (option.Option[V], bool) {
	return m.focusedOption()
}

// IsOpen reports whether the menu is open.
func (m *Machine[V]) IsOpen() bool {
	return m.open
}

// Search returns the current search text.
func (m *Machine[V]) Search() string {
	return m.search
}

// Value returns the last confirmed or proposed value.
func (m *Machine[V]) Value() Value[V] {
	return m.value
}

// HasSelection reports whether anything is selected.
func (m *Machine[V]) HasSelection() bool {
	return !m.value.IsEmpty()
}

// CanClear reports whether Clear would have an effect.
func (m *Machine[V]) CanClear() bool {
	return m.canClear()
}

// IsSelected reports whether o's resolved value is selected.
func (m *Machine[V]) IsSelected(o option.Option[V]) bool {
	return m.value.Contains(m.cfg.Projection.ValueOf(o))
}

// SelectedOptions resolves the selected values to options, in selection
// order.
func (m *Machine[V]) SelectedOptions() []option.Option[V] {
	values := m.value.Values()
	selected := make([]option.Option[V], 0, len(values))
	for _, v := range values {
		selected = append(selected, m.optionFor(v))
	}
	return selected
}

// Config returns the active configuration.
func (m *Machine[V]) Config() Config[V] {
	return m.cfg
}

// UID returns the instance id used for accessibility ids and traces.
func (m *Machine[V]) UID() string {
	return m.uid
}

func (m *Machine[V]) controlled() bool {
	return m.cfg.IsMenuOpen != nil
}

func (m *Machine[V]) openMenu() {
	if m.cfg.IsDisabled || m.open {
		return
	}
	if m.controlled() {
		m.emit(MenuToggleRequested{Open: true})
		return
	}
	m.setOpen(true, false)
}

func (m *Machine[V]) closeMenu(clearSearch bool) {
	if m.controlled() {
		if m.open {
			m.emit(MenuToggleRequested{Open: false})
		}
		if clearSearch {
			m.setSearch("")
		}
		return
	}
	if !m.open {
		if clearSearch {
			m.setSearch("")
		}
		return
	}
	m.setOpen(false, clearSearch)
}

func (m *Machine[V]) setOpen(open, clearSearch bool) {
	if open == m.open {
		return
	}
	m.open = open
	if open {
		m.refresh(true)
		events.Menu.Opened(m.uid, len(m.filtered))
		m.emit(MenuOpened{})
		return
	}
	m.resetFocus()
	if clearSearch {
		m.setSearch("")
	}
	events.Menu.Closed(m.uid)
	m.emit(MenuClosed{})
}

func (m *Machine[V]) setSearch(text string) {
	if text == m.search {
		return
	}
	m.search = text
	if text == "" {
		events.Filter.Cleared(m.uid)
	}
	m.emit(SearchChanged{Search: text})
	m.refresh(true)
}

// transition runs fn and fires the scroll side effect when focus moved while
// the menu is open.
func (m *Machine[V]) transition(fn func()) {
	before := m.focused
	fn()
	if m.open && m.focused >= 0 && m.focused != before {
		events.Menu.Focus(m.uid, m.focused)
		if m.cfg.ScrollIntoView != nil {
			m.cfg.ScrollIntoView(m.focused)
		}
	}
}

func (m *Machine[V]) emit(n Notification) {
	if m.cfg.Notify != nil {
		m.cfg.Notify(n)
	}
}

func (m *Machine[V]) warn(msg string) {
	if m.cfg.DisableInvalidValueWarn {
		return
	}
	logging.Warn(msg)
	events.Select.Warning(m.uid, msg)
}

package ui

import (
	"github.com/atomicstack/popup-select/internal/combobox"
	"github.com/atomicstack/popup-select/internal/option"
	tea "github.com/charmbracelet/bubbletea"
)

type hitKind int

const (
	hitNone hitKind = iota
	hitControl
	hitToggle
	hitClear
	hitTagRemove
	hitOption
	hitCreate
)

// span is a half-open column range.
type span struct {
	start, end int
}

func (s span) has(x int) bool {
	return s.end > s.start && x >= s.start && x < s.end
}

type tagSpan struct {
	remove span
	option option.Option[string]
}

type hit struct {
	kind   hitKind
	index  int
	option option.Option[string]
}

// layout records where the last View placed each interactive element so
// mouse events can be routed back to the machine.
type layout struct {
	top        int
	bottom     int
	tagRow     int
	tags       []tagSpan
	controlRow int
	clear      span
	toggle     span
	menuTop    int
	rows       []int
	createRow  int
}

func newLayout() layout {
	return layout{tagRow: -1, createRow: -1, menuTop: -1}
}

// contains reports whether a point lies on the control or the open menu.
func (l *layout) contains(x, y int) bool {
	return y >= l.top && y <= l.bottom
}

func (l *layout) hit(x, y int) hit {
	if !l.contains(x, y) {
		return hit{}
	}
	switch {
	case y == l.tagRow:
		for _, t := range l.tags {
			if t.remove.has(x) {
				return hit{kind: hitTagRemove, option: t.option}
			}
		}
		return hit{kind: hitControl}
	case y == l.controlRow:
		if l.clear.has(x) {
			return hit{kind: hitClear}
		}
		if l.toggle.has(x) {
			return hit{kind: hitToggle}
		}
		return hit{kind: hitControl}
	case y == l.createRow:
		return hit{kind: hitCreate}
	}
	if idx, ok := l.optionAt(y); ok {
		return hit{kind: hitOption, index: idx}
	}
	return hit{}
}

func (l *layout) optionAt(y int) (int, bool) {
	if l.menuTop < 0 {
		return -1, false
	}
	row := y - l.menuTop
	if row < 0 || row >= len(l.rows) {
		return -1, false
	}
	return l.rows[row], true
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.done {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		m.machine.FocusPrev()
	case ev.Button == tea.MouseButtonWheelDown:
		m.machine.FocusNext()
	case ev.Action == tea.MouseActionMotion:
		if idx, ok := m.layout.optionAt(ev.Y); ok {
			m.machine.HoverOption(idx)
		}
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		m.pointerDown(ev.X, ev.Y)
	}
	return nil
}

// pointerDown delivers a press to the element under it and then to the
// document, which closes menus the press landed outside of.
func (m *Model) pointerDown(x, y int) {
	target := m.layout.hit(x, y)
	switch target.kind {
	case hitToggle:
		m.machine.ClickToggle()
	case hitClear:
		m.machine.Clear()
	case hitTagRemove:
		m.machine.ClickRemove(target.option)
	case hitControl:
		m.machine.PointerDownInput()
	case hitOption:
		m.machine.ClickOption(target.index)
	case hitCreate:
		m.machine.CreateOption()
	}
	m.doc.DispatchPointer(combobox.PointerEvent{X: x, Y: y})
}

package ui

import (
	"unicode"

	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.search.CursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput applies the host's default text handling for keys the
// combobox did not consume.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	uid := m.machine.UID()
	before := m.search.CursorPos()
	switch {
	case key.Matches(msg, m.keys.ClearSearch):
		if !m.search.Clear() {
			return false
		}
		events.Filter.Cleared(uid)
		return m.applySearch(before)
	case key.Matches(msg, m.keys.DeleteWord):
		if !m.search.DeleteWordBackward() {
			return false
		}
		events.Filter.WordBackspace(uid, m.search.Text)
		return m.applySearch(before)
	case key.Matches(msg, m.keys.CaretStart):
		return m.moveCaret(m.search.MoveStart(), before, false)
	case key.Matches(msg, m.keys.CaretEnd):
		return m.moveCaret(m.search.MoveEnd(), before, false)
	case key.Matches(msg, m.keys.WordBackward):
		return m.moveCaret(m.search.MoveWordBackward(), before, true)
	case key.Matches(msg, m.keys.WordForward):
		return m.moveCaret(m.search.MoveWordForward(), before, true)
	case key.Matches(msg, m.keys.CaretLeft):
		return m.moveCaret(m.search.MoveRuneBackward(), before, false)
	case key.Matches(msg, m.keys.CaretRight):
		return m.moveCaret(m.search.MoveRuneForward(), before, false)
	case key.Matches(msg, m.keys.Backspace):
		if !m.search.DeleteRuneBackward() {
			return false
		}
		events.Filter.Backspace(uid, m.search.Text)
		return m.applySearch(before)
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToSearch(string(msg.Runes), before)
	case tea.KeySpace:
		return m.appendToSearch(" ", before)
	}
	return false
}

func (m *Model) appendToSearch(text string, before int) bool {
	if !m.search.Insert(text) {
		return false
	}
	events.Filter.Append(m.machine.UID(), m.search.Text)
	return m.applySearch(before)
}

func (m *Model) moveCaret(moved bool, before int, word bool) bool {
	if !moved {
		return false
	}
	m.noteFilterCursorChange(before)
	if word {
		events.Filter.CursorWord(m.machine.UID(), m.search.Cursor)
	} else {
		events.Filter.Cursor(m.machine.UID(), m.search.Cursor)
	}
	return true
}

// applySearch hands the edited text to the machine. When the machine
// rejects it the field is restored by syncSearch.
func (m *Model) applySearch(before int) bool {
	m.noteFilterCursorChange(before)
	m.machine.InputText(m.search.Text)
	return true
}

// controlText renders the search input with its caret. When the search is
// empty it shows the current single value or the placeholder instead.
func (m *Model) controlText() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	text := m.search.Text
	if text == "" {
		hint, style := m.emptyControlHint()
		runes := []rune(hint)
		var caretRune, rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if style != nil {
			m.filterCursor.TextStyle = style.Copy()
		}
		return m.renderFilterCursor(caretRune) + render(style, rest)
	}
	runes := []rune(text)
	pos := m.search.CursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) emptyControlHint() (string, *lipgloss.Style) {
	if !m.cfg.IsMulti {
		if selected := m.machine.SelectedOptions(); len(selected) == 1 {
			return m.cfg.Projection.LabelOf(selected[0]), styles.Value
		}
	}
	if m.cfg.IsMulti && m.machine.HasSelection() {
		return "", styles.FilterPlaceholder
	}
	return m.placeholder, styles.FilterPlaceholder
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink || !m.focusedInput() {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}

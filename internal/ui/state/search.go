package state

import "unicode"

// SearchField is the editable search text with a rune-indexed caret.
// Every edit goes through splice and every caret move through moveTo, so
// callers can rely on the boolean result meaning "something changed".
type SearchField struct {
	Text   string
	Cursor int
}

// Set replaces the text and clamps the caret into it.
func (s *SearchField) Set(text string, cursor int) {
	s.Text = text
	s.Cursor = clamp(cursor, 0, len([]rune(text)))
}

// CursorPos returns the rune offset of the caret.
func (s *SearchField) CursorPos() int {
	return clamp(s.Cursor, 0, len([]rune(s.Text)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// splice replaces runes [from, to) with insert and parks the caret after
// the inserted text.
func (s *SearchField) splice(from, to int, insert []rune) bool {
	if from == to && len(insert) == 0 {
		return false
	}
	runes := []rune(s.Text)
	out := make([]rune, 0, len(runes)-(to-from)+len(insert))
	out = append(out, runes[:from]...)
	out = append(out, insert...)
	out = append(out, runes[to:]...)
	s.Set(string(out), from+len(insert))
	return true
}

func (s *SearchField) moveTo(pos int) bool {
	pos = clamp(pos, 0, len([]rune(s.Text)))
	if pos == s.CursorPos() {
		return false
	}
	s.Cursor = pos
	return true
}

// Insert places text at the caret.
func (s *SearchField) Insert(text string) bool {
	pos := s.CursorPos()
	return s.splice(pos, pos, []rune(text))
}

// DeleteRuneBackward deletes the rune before the caret.
func (s *SearchField) DeleteRuneBackward() bool {
	pos := s.CursorPos()
	if pos == 0 {
		return false
	}
	return s.splice(pos-1, pos, nil)
}

// DeleteWordBackward deletes the word preceding the caret along with the
// blanks between it and the caret.
func (s *SearchField) DeleteWordBackward() bool {
	pos := s.CursorPos()
	return s.splice(wordStart([]rune(s.Text), pos), pos, nil)
}

// Clear empties the field.
func (s *SearchField) Clear() bool {
	if s.Text == "" {
		return false
	}
	s.Set("", 0)
	return true
}

func (s *SearchField) MoveStart() bool { return s.moveTo(0) }

func (s *SearchField) MoveEnd() bool { return s.moveTo(len([]rune(s.Text))) }

func (s *SearchField) MoveRuneBackward() bool { return s.moveTo(s.CursorPos() - 1) }

func (s *SearchField) MoveRuneForward() bool { return s.moveTo(s.CursorPos() + 1) }

// MoveWordBackward moves the caret to the start of the previous word.
func (s *SearchField) MoveWordBackward() bool {
	return s.moveTo(wordStart([]rune(s.Text), s.CursorPos()))
}

// MoveWordForward moves the caret past the current word and the blanks
// after it.
func (s *SearchField) MoveWordForward() bool {
	return s.moveTo(wordEnd([]rune(s.Text), s.CursorPos()))
}

func wordStart(runes []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	return pos
}

func wordEnd(runes []rune, pos int) int {
	for pos < len(runes) && !unicode.IsSpace(runes[pos]) {
		pos++
	}
	for pos < len(runes) && unicode.IsSpace(runes[pos]) {
		pos++
	}
	return pos
}

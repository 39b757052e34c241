package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/popup-select/internal/format/table"
	"github.com/atomicstack/popup-select/internal/option"
	"github.com/atomicstack/popup-select/internal/source"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	promptText     = "» "
	clearGlyph     = "✕"
	openGlyph      = "▾"
	closeGlyph     = "▴"
	loadingGlyph   = "…"
	removeGlyph    = "×"
	noResultsText  = "No results found"
	loadingText    = "Loading…"
	itemIndicator  = "▌"
	selectedGlyph  = "✓"
	createHintText = "Press enter to add %q option"
	createAltText  = "Press alt+enter to add %q option"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	m.layout = newLayout()
	lines := make([]styledLine, 0, 16)
	if line, tags, ok := m.tagsLine(); ok {
		m.layout.tagRow = len(lines)
		m.layout.tags = tags
		lines = append(lines, line)
	}
	m.layout.controlRow = len(lines)
	lines = append(lines, m.controlLine())
	if m.machine.IsOpen() {
		lines = append(lines, m.menuLines(len(lines))...)
	}
	m.layout.bottom = len(lines) - 1

	if m.errMsg != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	} else if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerText(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// tagsLine renders multi-select values as removable chips.
func (m *Model) tagsLine() (styledLine, []tagSpan, bool) {
	if !m.cfg.IsMulti || !m.machine.HasSelection() {
		return styledLine{}, nil, false
	}
	var b strings.Builder
	var spans []tagSpan
	x := 0
	for i, o := range m.machine.SelectedOptions() {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		label := m.cfg.Projection.LabelOf(o)
		if m.slots.Tag != nil {
			label = m.slots.Tag(o)
		}
		chip := " " + label + " "
		b.WriteString(renderStyled(styles.Tag, chip))
		x += runewidth.StringWidth(chip)
		removable := !m.cfg.IsDisabled
		if removable {
			b.WriteString(renderStyled(styles.TagRemove, removeGlyph))
			w := runewidth.StringWidth(removeGlyph)
			spans = append(spans, tagSpan{remove: span{start: x, end: x + w}, option: o})
			x += w
		}
	}
	return styledLine{text: b.String(), raw: true}, spans, true
}

// controlLine renders the prompt, the search input and the clear, toggle
// and loading affordances.
func (m *Model) controlLine() styledLine {
	prompt := promptText
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	left := prompt + m.controlText()
	x := lipgloss.Width(left)

	type affordance struct {
		glyph string
		kind  hitKind
	}
	var parts []affordance
	if m.machine.CanClear() {
		parts = append(parts, affordance{clearGlyph, hitClear})
	}
	switch {
	case m.cfg.IsLoading:
		parts = append(parts, affordance{loadingGlyph, hitNone})
	case m.machine.IsOpen():
		parts = append(parts, affordance{closeGlyph, hitToggle})
	default:
		parts = append(parts, affordance{openGlyph, hitToggle})
	}
	rightWidth := 0
	for _, p := range parts {
		rightWidth += 1 + runewidth.StringWidth(p.glyph)
	}
	pad := 1
	if m.width > 0 && m.width-x-rightWidth > pad {
		pad = m.width - x - rightWidth
	}
	var b strings.Builder
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", pad))
	x += pad
	for _, p := range parts {
		b.WriteString(" ")
		x++
		w := runewidth.StringWidth(p.glyph)
		style := styles.Affordance
		if p.kind == hitNone {
			style = styles.Loading
		}
		b.WriteString(renderStyled(style, p.glyph))
		switch p.kind {
		case hitClear:
			m.layout.clear = span{start: x, end: x + w}
		case hitToggle:
			m.layout.toggle = span{start: x, end: x + w}
		}
		x += w
	}
	return styledLine{text: b.String(), raw: true}
}

// menuLines renders the visible window of the filtered list. top is the row
// the menu starts on.
func (m *Model) menuLines(top int) []styledLine {
	filtered := m.machine.Filtered()
	if len(filtered) == 0 {
		switch {
		case m.creatable():
			m.layout.createRow = top
			return []styledLine{{text: fmt.Sprintf(createHintText, m.machine.Search()), style: styles.CreateHint}}
		case m.cfg.IsLoading:
			return []styledLine{{text: loadingText, style: styles.Loading}}
		default:
			return []styledLine{{text: noResultsText, style: styles.NoResults}}
		}
	}
	m.viewport.EnsureVisible(m.machine.FocusedIndex(), len(filtered), m.maxVisibleItems())
	start, end := m.viewport.Window(len(filtered), m.maxVisibleItems())
	visible := filtered[start:end]
	labels := m.rowLabels(visible)

	m.layout.menuTop = top
	lines := make([]styledLine, 0, len(visible))
	for i, o := range visible {
		idx := start + i
		m.layout.rows = append(m.layout.rows, idx)
		lines = append(lines, m.buildItemLine(o, labels[i], idx))
	}
	if m.creatable() {
		m.layout.createRow = top + len(lines)
		lines = append(lines, styledLine{text: fmt.Sprintf(createAltText, m.machine.Search()), style: styles.CreateHint})
	}
	return lines
}

// rowLabels aligns labels and descriptions into columns.
func (m *Model) rowLabels(visible []option.Option[string]) []string {
	rows := make([][]string, len(visible))
	hasDescription := false
	for i, o := range visible {
		label := m.cfg.Projection.LabelOf(o)
		desc := o.String(source.KeyDescription)
		if desc != "" {
			hasDescription = true
		}
		rows[i] = []string{label, desc}
	}
	if !hasDescription {
		out := make([]string, len(rows))
		for i, row := range rows {
			out[i] = row[0]
		}
		return out
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
}

func (m *Model) buildItemLine(o option.Option[string], label string, idx int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	mark := "  "
	if m.machine.IsSelected(o) {
		mark = selectedGlyph + " "
	}
	if m.cfg.IsMulti {
		if m.machine.IsSelected(o) {
			mark = "[" + selectedGlyph + "] "
		} else {
			mark = "[ ] "
		}
	}
	switch {
	case idx == m.machine.FocusedIndex():
		indicatorStyle = styles.FocusedItemIndicator
		lineStyle = styles.FocusedItem
	case o.Disabled:
		lineStyle = styles.DisabledItem
	}
	fullText := itemIndicator + " " + mark + label
	if m.slots.Option != nil {
		fullText = itemIndicator + " " + m.slots.Option(Row{
			Option:   o,
			Label:    label,
			Focused:  idx == m.machine.FocusedIndex(),
			Selected: m.machine.IsSelected(o),
		})
	}
	if m.width > 0 {
		if pad := m.width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// creatable reports whether enter would turn the search into a new tag.
func (m *Model) creatable() bool {
	search := m.machine.Search()
	if !m.cfg.IsTaggable || search == "" {
		return false
	}
	for _, o := range m.machine.Filtered() {
		if m.cfg.Projection.LabelOf(o) == search {
			return false
		}
	}
	return true
}

func (m *Model) footerText() string {
	bindings := m.keys.footerHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func (m *Model) maxVisibleItems() int {
	limit := m.maxVisible
	if m.height <= 0 {
		return limit
	}
	used := 1 // control line
	if m.cfg.IsMulti && m.machine.HasSelection() {
		used++
	}
	if m.errMsg != "" || m.currentInfo() != "" {
		used++
	}
	if m.showFooter {
		used += 2
	}
	if m.creatable() && len(m.machine.Filtered()) > 0 {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		remain = 1
	}
	if limit <= 0 || remain < limit {
		limit = remain
	}
	return limit
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = ansi.Truncate(text, width, "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

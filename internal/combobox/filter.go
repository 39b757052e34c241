package combobox

import (
	"strings"

	"github.com/atomicstack/popup-select/internal/option"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterFunc decides whether an option matches the search text. label is the
// option's resolved label.
type FilterFunc[V comparable] func(o option.Option[V], label, search string) bool

// Query collects the inputs of a filter pass.
type Query[V comparable] struct {
	Search       string
	Searchable   bool
	FilterBy     FilterFunc[V]
	Projection   option.Projection[V]
	Multi        bool
	HideSelected bool
	Selected     Value[V]
}

// Filter returns the options eligible for display and navigation, in their
// original order.
func Filter[V comparable](opts []option.Option[V], q Query[V]) []option.Option[V] {
	match := q.FilterBy
	if match == nil {
		match = DefaultFilter[V]
	}
	hide := q.Multi && q.HideSelected
	filtered := make([]option.Option[V], 0, len(opts))
	for _, o := range opts {
		v := q.Projection.Resolve(o)
		if q.Searchable && !match(o, v.Label, q.Search) {
			continue
		}
		if hide && q.Selected.Contains(v.Value) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// DefaultFilter is a case-insensitive substring match on the label.
func DefaultFilter[V comparable](_ option.Option[V], label, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(search))
}

// FuzzyFilter matches when the search runes appear in order within the
// label, ignoring case and diacritics.
func FuzzyFilter[V comparable]() FilterFunc[V] {
	return func(_ option.Option[V], label, search string) bool {
		if strings.TrimSpace(search) == "" {
			return true
		}
		return fuzzy.MatchNormalizedFold(search, label)
	}
}

func (m *Machine[V]) query() Query[V] {
	return Query[V]{
		Search:       m.search,
		Searchable:   m.cfg.IsSearchable,
		FilterBy:     m.cfg.FilterBy,
		Projection:   m.cfg.Projection,
		Multi:        m.cfg.IsMulti,
		HideSelected: m.cfg.HideSelectedOptions,
		Selected:     m.value,
	}
}

func (m *Machine[V]) source() []option.Option[V] {
	if m.cfg.DisplayedOptions != nil {
		return m.cfg.DisplayedOptions
	}
	return m.options
}

// refresh recomputes the filtered list. While open, focus is re-derived when
// the list changed or autofocus is forced; otherwise it is only clamped.
func (m *Machine[V]) refresh(forceAutofocus bool) {
	prev := m.filtered
	m.filtered = Filter(m.source(), m.query())
	if !m.open {
		m.focused = -1
		return
	}
	if forceAutofocus || !m.sameList(prev, m.filtered) {
		m.autoFocus()
		return
	}
	m.clampFocus()
}

func (m *Machine[V]) sameList(a, b []option.Option[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Disabled != b[i].Disabled || !m.cfg.Projection.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

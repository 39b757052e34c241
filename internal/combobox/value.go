package combobox

// Value is a selection as seen by the host. Single-select values hold zero or
// one entry; list values keep insertion order and never hold duplicates.
type Value[V comparable] struct {
	items []V
	list  bool
}

// None returns an empty single-select value.
func None[V comparable]() Value[V] {
	return Value[V]{}
}

// Single returns a single-select value holding v.
func Single[V comparable](v V) Value[V] {
	return Value[V]{items: []V{v}}
}

// List returns a multi-select value. Duplicates are dropped, keeping the
// first occurrence.
func List[V comparable](vs ...V) Value[V] {
	items := make([]V, 0, len(vs))
	for _, v := range vs {
		if !contains(items, v) {
			items = append(items, v)
		}
	}
	return Value[V]{items: items, list: true}
}

// IsList reports whether the value is a multi-select sequence.
func (v Value[V]) IsList() bool {
	return v.list
}

// Len returns the number of selected entries.
func (v Value[V]) Len() int {
	return len(v.items)
}

// IsEmpty reports whether nothing is selected.
func (v Value[V]) IsEmpty() bool {
	return len(v.items) == 0
}

// Get returns the first selected entry.
func (v Value[V]) Get() (V, bool) {
	if len(v.items) == 0 {
		var zero V
		return zero, false
	}
	return v.items[0], true
}

// Last returns the most recently selected entry.
func (v Value[V]) Last() (V, bool) {
	if len(v.items) == 0 {
		var zero V
		return zero, false
	}
	return v.items[len(v.items)-1], true
}

// Values returns a copy of the selected entries in selection order.
func (v Value[V]) Values() []V {
	dup := make([]V, len(v.items))
	copy(dup, v.items)
	return dup
}

// Contains reports whether x is selected.
func (v Value[V]) Contains(x V) bool {
	return contains(v.items, x)
}

// Equal reports whether both values have the same shape and entries.
func (v Value[V]) Equal(o Value[V]) bool {
	if v.list != o.list || len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

func (v Value[V]) with(x V) Value[V] {
	if v.Contains(x) {
		return v
	}
	items := make([]V, 0, len(v.items)+1)
	items = append(items, v.items...)
	items = append(items, x)
	return Value[V]{items: items, list: true}
}

func (v Value[V]) without(x V) Value[V] {
	items := make([]V, 0, len(v.items))
	for _, item := range v.items {
		if item != x {
			items = append(items, item)
		}
	}
	return Value[V]{items: items, list: v.list}
}

func contains[V comparable](items []V, x V) bool {
	for _, item := range items {
		if item == x {
			return true
		}
	}
	return false
}

package option

// Option is a selectable record. Extra carries host fields that projections
// may read; the widget never mutates an option.
type Option[V comparable] struct {
	Label    string
	Value    V
	Disabled bool
	Extra    map[string]any
}

// View is the canonical form of an option after projections are applied.
type View[V comparable] struct {
	Label    string
	Value    V
	Disabled bool
}

// Projection overrides how labels and values are read from an option.
// Nil functions fall back to the Label and Value fields.
type Projection[V comparable] struct {
	Label func(Option[V]) string
	Value func(Option[V]) V
}

// LabelOf returns the resolved label for o.
func (p Projection[V]) LabelOf(o Option[V]) string {
	if p.Label != nil {
		return p.Label(o)
	}
	return o.Label
}

// ValueOf returns the resolved value for o.
func (p Projection[V]) ValueOf(o Option[V]) V {
	if p.Value != nil {
		return p.Value(o)
	}
	return o.Value
}

// Resolve applies both projections.
func (p Projection[V]) Resolve(o Option[V]) View[V] {
	return View[V]{
		Label:    p.LabelOf(o),
		Value:    p.ValueOf(o),
		Disabled: o.Disabled,
	}
}

// Equal reports whether a and b resolve to the same value.
func (p Projection[V]) Equal(a, b Option[V]) bool {
	return p.ValueOf(a) == p.ValueOf(b)
}

// IndexOf returns the index of the first option whose resolved value is v.
func (p Projection[V]) IndexOf(opts []Option[V], v V) int {
	for i, o := range opts {
		if p.ValueOf(o) == v {
			return i
		}
	}
	return -1
}

// Clone produces a shallow copy of the provided options.
func Clone[V comparable](opts []Option[V]) []Option[V] {
	if opts == nil {
		return nil
	}
	dup := make([]Option[V], len(opts))
	copy(dup, opts)
	return dup
}

// String reads a string field from Extra, returning "" when absent.
func (o Option[V]) String(key string) string {
	if o.Extra == nil {
		return ""
	}
	if s, ok := o.Extra[key].(string); ok {
		return s
	}
	return ""
}

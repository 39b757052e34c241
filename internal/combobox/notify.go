package combobox

import "github.com/atomicstack/popup-select/internal/option"

// Notification is a one-way message emitted on a state transition.
type Notification interface {
	notification()
}

// ValueChanged proposes the next selection value to the host.
type ValueChanged[V comparable] struct {
	Value Value[V]
}

// SearchChanged reports a new search string.
type SearchChanged struct {
	Search string
}

// OptionSelected reports an option committed through SetOption.
type OptionSelected[V comparable] struct {
	Option option.Option[V]
}

// OptionDeselected reports a removal. Option is nil for a bulk clear of a
// multi-selection.
type OptionDeselected[V comparable] struct {
	Option *option.Option[V]
}

// OptionCreated reports a tag created from the search text.
type OptionCreated struct {
	Label string
}

// MenuOpened and MenuClosed report menu transitions.
type MenuOpened struct{}

type MenuClosed struct{}

// MenuToggleRequested is emitted instead of a transition when the open state
// is controlled by the host.
type MenuToggleRequested struct {
	Open bool
}

func (ValueChanged[V]) notification()     {}
func (SearchChanged) notification()       {}
func (OptionSelected[V]) notification()   {}
func (OptionDeselected[V]) notification() {}
func (OptionCreated) notification()       {}
func (MenuOpened) notification()          {}
func (MenuClosed) notification()          {}
func (MenuToggleRequested) notification() {}

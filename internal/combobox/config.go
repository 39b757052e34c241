package combobox

import "github.com/atomicstack/popup-select/internal/option"

// Config carries host-supplied flags and extension points.
type Config[V comparable] struct {
	// UID scopes accessibility ids. A random id is assigned when empty.
	UID string

	IsMulti      bool
	IsClearable  bool
	IsDisabled   bool
	IsSearchable bool
	IsTaggable   bool
	IsLoading    bool

	// IsMenuOpen switches the open state to host control when non-nil.
	IsMenuOpen *bool

	HideSelectedOptions   bool
	ShouldAutofocusOption bool
	CloseOnSelect         bool
	SelectOnBlur          bool
	ClearSearchOnClose    bool

	DisableInvalidValueWarn bool

	// DisplayedOptions replaces the option list as filter input when non-nil.
	DisplayedOptions []option.Option[V]

	FilterBy     FilterFunc[V]
	Projection   option.Projection[V]
	CreateOption func(label string) option.Option[V]

	// ScrollIntoView runs after a transition that moved focus while open.
	ScrollIntoView func(index int)

	Notify func(Notification)
}

// DefaultConfig returns the configuration used when the host sets nothing.
func DefaultConfig[V comparable]() Config[V] {
	return Config[V]{
		IsClearable:           true,
		IsSearchable:          true,
		ShouldAutofocusOption: true,
		CloseOnSelect:         true,
		ClearSearchOnClose:    true,
	}
}

// BoolPtr is a helper for IsMenuOpen.
func BoolPtr(b bool) *bool {
	return &b
}

package state

import "github.com/atomicstack/popup-select/internal/option"

// OptionStore holds the host's current option snapshot and its load status.
type OptionStore interface {
	Options() []option.Option[string]
	SetOptions([]option.Option[string])
	Loading() bool
	SetLoading(bool)
	Err() error
	SetErr(error)
}

type optionStore struct {
	options []option.Option[string]
	loading bool
	err     error
}

func NewOptionStore() OptionStore {
	return &optionStore{}
}

func (s *optionStore) Options() []option.Option[string] {
	return cloneOptions(s.options)
}

func (s *optionStore) SetOptions(opts []option.Option[string]) {
	s.options = cloneOptions(opts)
}

func (s *optionStore) Loading() bool {
	return s.loading
}

func (s *optionStore) SetLoading(loading bool) {
	s.loading = loading
}

func (s *optionStore) Err() error {
	return s.err
}

func (s *optionStore) SetErr(err error) {
	s.err = err
}

func cloneOptions(opts []option.Option[string]) []option.Option[string] {
	if len(opts) == 0 {
		return nil
	}
	return option.Clone(opts)
}

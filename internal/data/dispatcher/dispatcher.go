package dispatcher

import (
	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/logging"
	"github.com/atomicstack/popup-select/internal/state"
)

type Result struct {
	LoadingChanged bool
	OptionsUpdated bool
	Err            error
}

type Dispatcher struct {
	options state.OptionStore
}

func New(s state.OptionStore) *Dispatcher {
	return &Dispatcher{options: s}
}

// Handle applies a watcher event to the store. A failed reload keeps the
// previous options.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	switch evt.Kind {
	case backend.KindLoading:
		if !d.options.Loading() {
			d.options.SetLoading(true)
			res.LoadingChanged = true
		}
	case backend.KindOptions:
		if d.options.Loading() {
			d.options.SetLoading(false)
			res.LoadingChanged = true
		}
		d.options.SetErr(evt.Err)
		if evt.Err != nil {
			logging.Error(evt.Err)
			res.Err = evt.Err
			return res
		}
		d.options.SetOptions(evt.Options)
		res.OptionsUpdated = true
	}
	return res
}

package dispatcher

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/logging"
	"github.com/atomicstack/popup-select/internal/option"
	"github.com/atomicstack/popup-select/internal/state"
)

func TestDispatcherAppliesLoadCycle(t *testing.T) {
	store := state.NewOptionStore()
	d := New(store)

	res := d.Handle(backend.Event{Kind: backend.KindLoading})
	if !res.LoadingChanged || !store.Loading() {
		t.Fatalf("expected loading to start, got %+v", res)
	}
	if res := d.Handle(backend.Event{Kind: backend.KindLoading}); res.LoadingChanged {
		t.Fatalf("expected repeated loading event to be a no-op")
	}

	opts := []option.Option[string]{{Label: "a", Value: "a"}}
	res = d.Handle(backend.Event{Kind: backend.KindOptions, Options: opts})
	if !res.OptionsUpdated || !res.LoadingChanged {
		t.Fatalf("expected options update, got %+v", res)
	}
	if store.Loading() || len(store.Options()) != 1 {
		t.Fatalf("unexpected store state loading=%v options=%d", store.Loading(), len(store.Options()))
	}
}

func TestDispatcherKeepsOptionsOnError(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))
	t.Cleanup(func() { logging.Configure("") })

	store := state.NewOptionStore()
	store.SetOptions([]option.Option[string]{{Label: "keep", Value: "keep"}})
	d := New(store)

	boom := errors.New("boom")
	res := d.Handle(backend.Event{Kind: backend.KindOptions, Err: boom})
	if res.OptionsUpdated || !errors.Is(res.Err, boom) {
		t.Fatalf("expected error result, got %+v", res)
	}
	if got := store.Options(); len(got) != 1 || got[0].Label != "keep" {
		t.Fatalf("expected previous options to survive, got %+v", got)
	}
	if store.Err() == nil {
		t.Fatalf("expected store error to be recorded")
	}
}

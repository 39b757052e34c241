package state

import (
	"errors"
	"testing"

	"github.com/atomicstack/popup-select/internal/option"
)

func TestOptionStoreCopiesSnapshots(t *testing.T) {
	store := NewOptionStore()
	in := []option.Option[string]{{Label: "a", Value: "a"}}
	store.SetOptions(in)
	in[0].Label = "mutated"

	got := store.Options()
	if got[0].Label != "a" {
		t.Fatalf("expected stored copy, got %q", got[0].Label)
	}
	got[0].Label = "also mutated"
	if store.Options()[0].Label != "a" {
		t.Fatalf("expected Options to return a copy")
	}
}

func TestOptionStoreStatus(t *testing.T) {
	store := NewOptionStore()
	if store.Loading() || store.Err() != nil {
		t.Fatalf("expected idle store")
	}
	store.SetLoading(true)
	store.SetErr(errors.New("boom"))
	if !store.Loading() || store.Err() == nil {
		t.Fatalf("expected loading store with error")
	}
	store.SetOptions(nil)
	if store.Options() != nil {
		t.Fatalf("expected nil options")
	}
}

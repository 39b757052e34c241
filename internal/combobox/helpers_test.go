package combobox

import (
	"testing"

	"github.com/atomicstack/popup-select/internal/option"
)

type recorder struct {
	notes []Notification
}

func (r *recorder) notify(n Notification) {
	r.notes = append(r.notes, n)
}

func (r *recorder) reset() {
	r.notes = nil
}

func (r *recorder) values() []Value[string] {
	var out []Value[string]
	for _, n := range r.notes {
		if vc, ok := n.(ValueChanged[string]); ok {
			out = append(out, vc.Value)
		}
	}
	return out
}

func (r *recorder) count(match func(Notification) bool) int {
	total := 0
	for _, n := range r.notes {
		if match(n) {
			total++
		}
	}
	return total
}

func isValueChanged(n Notification) bool {
	_, ok := n.(ValueChanged[string])
	return ok
}

func isMenuClosed(n Notification) bool {
	_, ok := n.(MenuClosed)
	return ok
}

func isMenuOpened(n Notification) bool {
	_, ok := n.(MenuOpened)
	return ok
}

func opts(labels ...string) []option.Option[string] {
	out := make([]option.Option[string], 0, len(labels))
	for _, l := range labels {
		out = append(out, option.Option[string]{Label: l, Value: l})
	}
	return out
}

func countries() []option.Option[string] {
	return []option.Option[string]{
		{Label: "France", Value: "FR"},
		{Label: "United Kingdom", Value: "UK"},
		{Label: "United States", Value: "US"},
		{Label: "Germany", Value: "DE"},
	}
}

// newTestMachine builds a machine with the default configuration, a fixed
// uid and a recording notification sink.
func newTestMachine(t *testing.T, mutate func(*Config[string])) (*Machine[string], *recorder) {
	t.Helper()
	rec := &recorder{}
	cfg := DefaultConfig[string]()
	cfg.UID = "t1"
	cfg.Notify = rec.notify
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg), rec
}

func labels(opts []option.Option[string]) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Label)
	}
	return out
}

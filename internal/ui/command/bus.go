package command

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/atomicstack/popup-select/internal/combobox"
	"github.com/atomicstack/popup-select/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler reacts to a combobox notification and may return a follow-up
// command for the Bubble Tea runtime.
type Handler func(combobox.Notification) tea.Cmd

// Bus routes combobox notifications to the host handlers registered for
// their concrete type.
type Bus struct {
	handlers map[reflect.Type][]Handler
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{handlers: map[reflect.Type][]Handler{}}
}

// Subscribe registers fn for notifications of the same type as sample.
func (b *Bus) Subscribe(sample combobox.Notification, fn Handler) {
	if sample == nil || fn == nil {
		return
	}
	t := reflect.TypeOf(sample)
	b.handlers[t] = append(b.handlers[t], fn)
}

// Publish runs the handlers for n synchronously and batches the commands
// they return.
func (b *Bus) Publish(n combobox.Notification) tea.Cmd {
	if n == nil {
		return nil
	}
	kind := Kind(n)
	events.Command.Queue(kind)
	handlers := b.handlers[reflect.TypeOf(n)]
	if len(handlers) == 0 {
		events.Command.Result(kind, "unhandled")
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(handlers))
	for _, h := range handlers {
		if cmd := h(n); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	events.Command.Result(kind, fmt.Sprintf("%d cmds", len(cmds)))
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Kind returns a short name for a notification type, e.g. "ValueChanged".
func Kind(n combobox.Notification) string {
	name := reflect.TypeOf(n).Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// Package ui contains the Bubble Tea program that hosts a single combobox.
// The Model acts as the host of internal/combobox: it owns the confirmed
// value, forwards terminal input to the machine and renders its state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse, focus, resize, backend updates).
//   - Keys the machine understands become combobox.KeyEvent values. They go to
//     the machine's input handler first and then to the shared Document; when
//     nobody prevented the default, input.go applies ordinary text editing to
//     the search field and hands the new text to the machine.
//   - Mouse presses are hit-tested against the layout recorded by the last
//     View and then dispatched to the Document so presses outside the widget
//     close the menu.
//
// Notifications:
//   - The machine's Notify callback only queues notifications. finishUpdate
//     publishes them on the command bus once the machine call has returned,
//     so ValueChanged can be fed straight back with SetValue.
//
// Backend interactions:
//   - An optional backend.Watcher streams option file reloads; the dispatcher
//     updates the option store, and the Model pushes the loading flag and the
//     new options into the machine.
package ui

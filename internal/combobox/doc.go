// Package combobox implements the interaction state machine behind a
// single/multi select dropdown, independent of any rendering layer.
//
// A Machine owns exactly two pieces of mutable state: the menu state (open
// flag plus the focused index into the filtered option list) and the search
// string. Everything else is derived or mirrored:
//   - Options and the selected Value belong to the host. The machine proposes
//     a next value through a ValueChanged notification and trusts the last
//     proposal until the host feeds a value back with SetValue.
//   - The filtered list is recomputed at the end of every input from the
//     options, search text, filter predicate and hide-selected rule.
//   - The focused index is re-derived (autofocus) whenever the menu opens or
//     the filtered list changes while open.
//
// Input arrives in two ways. Events aimed at the text input or a specific
// row are method calls (InputText, HandleKey, PointerDownInput, ClickOption,
// HoverOption, ...). Page-wide keyboard and pointer streams go through a
// Document; each mounted Machine registers listeners there and ignores
// events unless its own menu is open.
//
// The package is not safe for concurrent use. It is meant to be driven from
// a single event loop such as Bubble Tea's Update.
package combobox

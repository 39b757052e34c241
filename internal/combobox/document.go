package combobox

// Document is the page-wide event stream shared by every mounted instance.
// Listeners are registered for the lifetime of a mount and released on
// unmount.
type Document struct {
	keys     []keyListener
	pointers []pointerListener
	nextID   int
}

type keyListener struct {
	id int
	fn func(*KeyEvent)
}

type pointerListener struct {
	id int
	fn func(PointerEvent)
}

// NewDocument returns an empty event stream.
func NewDocument() *Document {
	return &Document{}
}

// OnKey registers a keydown listener. The returned function releases it and
// is safe to call more than once.
func (d *Document) OnKey(fn func(*KeyEvent)) func() {
	d.nextID++
	id := d.nextID
	d.keys = append(d.keys, keyListener{id: id, fn: fn})
	return func() {
		for i, l := range d.keys {
			if l.id == id {
				d.keys = append(d.keys[:i:i], d.keys[i+1:]...)
				return
			}
		}
	}
}

// OnPointer registers a pointer-down listener.
func (d *Document) OnPointer(fn func(PointerEvent)) func() {
	d.nextID++
	id := d.nextID
	d.pointers = append(d.pointers, pointerListener{id: id, fn: fn})
	return func() {
		for i, l := range d.pointers {
			if l.id == id {
				d.pointers = append(d.pointers[:i:i], d.pointers[i+1:]...)
				return
			}
		}
	}
}

// DispatchKey delivers ev to the listeners registered when dispatch began.
func (d *Document) DispatchKey(ev *KeyEvent) {
	if ev == nil {
		return
	}
	listeners := append([]keyListener(nil), d.keys...)
	for _, l := range listeners {
		l.fn(ev)
	}
}

// DispatchPointer delivers ev to the listeners registered when dispatch began.
func (d *Document) DispatchPointer(ev PointerEvent) {
	listeners := append([]pointerListener(nil), d.pointers...)
	for _, l := range listeners {
		l.fn(ev)
	}
}

// Listeners returns the number of registered key and pointer listeners.
func (d *Document) Listeners() int {
	return len(d.keys) + len(d.pointers)
}

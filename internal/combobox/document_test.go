package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentReleaseIsIdempotent(t *testing.T) {
	doc := NewDocument()
	calls := 0
	release := doc.OnKey(func(*KeyEvent) { calls++ })
	other := doc.OnPointer(func(PointerEvent) {})
	assert.Equal(t, 2, doc.Listeners())

	release()
	release()
	assert.Equal(t, 1, doc.Listeners())
	doc.DispatchKey(NewKeyEvent(KeyEnter))
	assert.Zero(t, calls)

	other()
	assert.Zero(t, doc.Listeners())
}

func TestDocumentDispatchUsesSnapshot(t *testing.T) {
	doc := NewDocument()
	var order []string
	var releaseSecond func()
	doc.OnKey(func(*KeyEvent) {
		order = append(order, "first")
		releaseSecond()
		doc.OnKey(func(*KeyEvent) { order = append(order, "late") })
	})
	releaseSecond = doc.OnKey(func(*KeyEvent) { order = append(order, "second") })

	doc.DispatchKey(NewKeyEvent(KeyArrowDown))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDocumentSkipsNilKeyEvent(t *testing.T) {
	doc := NewDocument()
	doc.OnKey(func(*KeyEvent) { t.Fatalf("listener must not run for nil event") })
	doc.DispatchKey(nil)
}

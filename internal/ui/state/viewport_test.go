package state

import "testing"

func TestEnsureVisibleScrollsDown(t *testing.T) {
	var v Viewport
	v.EnsureVisible(5, 10, 3)
	if v.Offset != 3 {
		t.Fatalf("expected offset 3, got %d", v.Offset)
	}
	v.EnsureVisible(4, 10, 3)
	if v.Offset != 3 {
		t.Fatalf("expected offset unchanged for visible row, got %d", v.Offset)
	}
}

func TestEnsureVisibleScrollsUp(t *testing.T) {
	v := Viewport{Offset: 6}
	v.EnsureVisible(2, 10, 3)
	if v.Offset != 2 {
		t.Fatalf("expected offset 2, got %d", v.Offset)
	}
}

func TestEnsureVisibleClampsOffset(t *testing.T) {
	v := Viewport{Offset: 9}
	v.EnsureVisible(-1, 5, 3)
	if v.Offset != 2 {
		t.Fatalf("expected offset clamped to 2, got %d", v.Offset)
	}
	v.EnsureVisible(0, 0, 3)
	if v.Offset != 0 {
		t.Fatalf("expected offset reset for empty list, got %d", v.Offset)
	}
	v.Offset = 4
	v.EnsureVisible(3, 10, 0)
	if v.Offset != 0 {
		t.Fatalf("expected offset reset without height, got %d", v.Offset)
	}
}

func TestWindow(t *testing.T) {
	v := Viewport{Offset: 8}
	start, end := v.Window(10, 4)
	if start != 6 || end != 10 {
		t.Fatalf("expected window 6-10, got %d-%d", start, end)
	}
	v.Reset()
	start, end = v.Window(2, 4)
	if start != 0 || end != 2 {
		t.Fatalf("expected window 0-2, got %d-%d", start, end)
	}
	start, end = v.Window(0, 4)
	if start != 0 || end != 0 {
		t.Fatalf("expected empty window, got %d-%d", start, end)
	}
}

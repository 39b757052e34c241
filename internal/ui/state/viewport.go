package state

// Viewport tracks the first visible row of a scrolling list.
type Viewport struct {
	Offset int
}

// EnsureVisible adjusts the offset so index stays within maxVisible rows.
// A negative index only clamps the offset.
func (v *Viewport) EnsureVisible(index, total, maxVisible int) {
	if total == 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if index < 0 {
		return
	}
	if index >= total {
		index = total - 1
	}
	if index < v.Offset {
		v.Offset = index
	}
	upper := v.Offset + maxVisible - 1
	if index > upper {
		v.Offset = index - maxVisible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}

// Window returns the half-open row range currently visible.
func (v *Viewport) Window(total, maxVisible int) (int, int) {
	if total == 0 {
		return 0, 0
	}
	if maxVisible <= 0 || maxVisible > total {
		maxVisible = total
	}
	start := v.Offset
	if start < 0 {
		start = 0
	}
	if start > total-maxVisible {
		start = total - maxVisible
	}
	return start, start + maxVisible
}

// Reset scrolls back to the top.
func (v *Viewport) Reset() {
	v.Offset = 0
}

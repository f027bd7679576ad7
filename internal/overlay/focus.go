package overlay

// TrapFocus keeps keyboard focus inside the open menu. Given the index of
// the focused element among count focusable elements it returns the index
// focus should wrap to, or false when the browser's default move is fine.
func TrapFocus(current, count int, shift bool) (int, bool) {
	if count == 0 {
		return 0, false
	}
	last := count - 1
	switch {
	case shift && current == 0:
		return last, true
	case !shift && current == last:
		return 0, true
	}
	return current, false
}

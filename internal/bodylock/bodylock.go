// Package bodylock suppresses page scrolling while an overlay is shown and
// guarantees the page is handed back exactly as it was found.
//
// A Lock is a resource handle: whoever acquires it must Release it on every
// exit path, including teardown. Release is idempotent.
package bodylock

import "sync"

// Body is the part of the document an overlay needs to freeze.
type Body interface {
	ScrollY() float64
	ScrollTo(y float64)
	// Fix pins the body at -offset so the visible content does not jump
	// while scrolling is suppressed.
	Fix(offset float64)
	Unfix()
	HideOverflow()
	ShowOverflow()
}

// Lock is a held scroll suppression.
type Lock struct {
	once    sync.Once
	release func()
	offset  float64
}

// Release undoes the lock. Calls after the first are no-ops.
func (l *Lock) Release() {
	if l == nil {
		return
	}
	l.once.Do(l.release)
}

// Offset is the scroll position captured when the lock was acquired.
func (l *Lock) Offset() float64 { return l.offset }

// Fixed captures the current scroll offset, pins the body and restores the
// offset on release. Used by the mobile navigation overlay.
func Fixed(b Body) *Lock {
	offset := b.ScrollY()
	b.Fix(offset)
	return &Lock{
		offset: offset,
		release: func() {
			b.Unfix()
			b.ScrollTo(offset)
		},
	}
}

// Overflow hides body overflow without moving the page. Used by dialogs
// that sit above the current scroll position.
func Overflow(b Body) *Lock {
	b.HideOverflow()
	return &Lock{
		offset:  b.ScrollY(),
		release: b.ShowOverflow,
	}
}

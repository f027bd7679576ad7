package nav

import "sync"

// FrameThrottle coalesces bursts of scroll events into at most one run of
// fn per rendered frame.
type FrameThrottle struct {
	mu      sync.Mutex
	pending bool
	fn      func()
}

func NewFrameThrottle(fn func()) *FrameThrottle {
	return &FrameThrottle{fn: fn}
}

// Request marks work pending for the next frame. Requests within the same
// frame collapse into one.
func (f *FrameThrottle) Request() {
	f.mu.Lock()
	f.pending = true
	f.mu.Unlock()
}

// Frame runs fn if anything was requested since the last frame and reports
// whether it ran.
func (f *FrameThrottle) Frame() bool {
	f.mu.Lock()
	run := f.pending
	f.pending = false
	f.mu.Unlock()

	if run {
		f.fn()
	}
	return run
}

// Package overlay implements the mobile navigation menu.
//
// Logically the menu is open or closed. The opening and closing phases only
// tell the renderer which transition to play; every decision is made on the
// open flag.
package overlay

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sahiltalaviya99/portfolio/internal/bodylock"
	"github.com/sahiltalaviya99/portfolio/internal/nav"
)

// NavigateDelay lets the overlay animate away before the page jumps.
const NavigateDelay = 150 * time.Millisecond

// Phase is the presentational state of the overlay.
type Phase int

const (
	Closed Phase = iota
	Opening
	Open
	Closing
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

// Key is a keyboard key relevant to the overlay.
type Key string

const (
	KeyEscape Key = "Escape"
	KeyTab    Key = "Tab"
)

// Menu is the mobile navigation overlay for one mounted navigation bar.
type Menu struct {
	mu      sync.Mutex
	body    bodylock.Body
	anchors nav.Anchors
	clock   clockwork.Clock

	phase   Phase
	lock    *bodylock.Lock
	pending clockwork.Timer
	gen     int
}

// Option configures a Menu.
type Option func(*Menu)

// WithClock replaces the wall clock used for the navigation delay.
func WithClock(c clockwork.Clock) Option {
	return func(m *Menu) { m.clock = c }
}

// NewMenu returns a closed menu operating on body. anchors resolves link
// targets; it may be nil when the menu only toggles.
func NewMenu(body bodylock.Body, anchors nav.Anchors, opts ...Option) *Menu {
	m := &Menu{body: body, anchors: anchors, clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsOpen reports the logical state.
func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isOpen()
}

func (m *Menu) isOpen() bool {
	return m.phase == Opening || m.phase == Open
}

// Phase reports the presentational state.
func (m *Menu) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Toggle is the hamburger button.
func (m *Menu) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.isOpen() {
		m.close()
		return
	}
	m.open()
}

// Open shows the overlay and freezes the page behind it.
func (m *Menu) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open()
}

func (m *Menu) open() {
	if m.isOpen() {
		return
	}
	m.lock = bodylock.Fixed(m.body)
	m.phase = Opening
}

// Close hides the overlay and hands the page back at its prior offset.
func (m *Menu) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.close()
}

func (m *Menu) close() {
	if !m.isOpen() {
		return
	}
	m.lock.Release()
	m.lock = nil
	m.phase = Closing
}

// Settle marks the running transition as finished.
func (m *Menu) Settle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.phase {
	case Opening:
		m.phase = Open
	case Closing:
		m.phase = Closed
	}
}

// Backdrop handles a tap outside the menu panel.
func (m *Menu) Backdrop() {
	m.Close()
}

// HandleKey reacts to a key press and reports whether the menu consumed it.
func (m *Menu) HandleKey(k Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.isOpen() {
		return false
	}
	if k == KeyEscape {
		m.close()
		return true
	}
	return false
}

// Navigate handles a tap on a menu link: the menu closes immediately and
// the page scrolls to the target once the close transition has had time
// to run. A second tap before the delay elapses replaces the first.
func (m *Menu) Navigate(href string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.close()
	m.cancelPending()
	gen := m.gen
	m.pending = m.clock.AfterFunc(NavigateDelay, func() {
		m.mu.Lock()
		if m.gen != gen {
			m.mu.Unlock()
			return
		}
		m.pending = nil
		m.mu.Unlock()

		if y, ok := nav.ScrollTarget(m.anchors, href); ok {
			m.body.ScrollTo(y)
		}
	})
}

// Unmount tears the menu down: any pending jump is cancelled and the page
// is unlocked if the menu was open.
func (m *Menu) Unmount() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelPending()
	m.lock.Release()
	m.lock = nil
	m.phase = Closed
	return nil
}

func (m *Menu) cancelPending() {
	m.gen++
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
}

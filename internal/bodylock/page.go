package bodylock

import "sync"

// Page is an in-memory document body. It follows browser semantics closely
// enough to exercise lock handling: a fixed body reports scroll offset 0
// and ignores scroll requests until unfixed.
type Page struct {
	mu       sync.Mutex
	height   float64
	viewport float64
	scrollY  float64
	fixed    bool
	fixedTop float64
	hidden   bool
	events   []string
}

// NewPage returns a page of the given document height seen through a
// viewport of the given height.
func NewPage(height, viewport float64) *Page {
	return &Page{height: height, viewport: viewport}
}

func (p *Page) ScrollY() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fixed {
		return 0
	}
	return p.scrollY
}

func (p *Page) ScrollTo(y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fixed || p.hidden {
		p.events = append(p.events, "scroll-ignored")
		return
	}
	p.scrollY = clamp(y, 0, max(0, p.height-p.viewport))
	p.events = append(p.events, "scroll")
}

func (p *Page) Fix(offset float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fixed = true
	p.fixedTop = -offset
	p.scrollY = 0
	p.events = append(p.events, "fix")
}

func (p *Page) Unfix() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fixed = false
	p.fixedTop = 0
	p.events = append(p.events, "unfix")
}

func (p *Page) HideOverflow() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hidden = true
	p.events = append(p.events, "overflow-hidden")
}

func (p *Page) ShowOverflow() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hidden = false
	p.events = append(p.events, "overflow-visible")
}

// Scrollable reports whether the user could scroll the page right now.
func (p *Page) Scrollable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.fixed && !p.hidden
}

// FixedTop is the body's top style while fixed.
func (p *Page) FixedTop() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fixedTop
}

// Events returns the body mutations in the order they happened.
func (p *Page) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

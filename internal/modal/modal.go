// Package modal controls the project detail dialog. At most one project is
// shown at a time, and the page behind it cannot scroll while it is open.
package modal

import (
	"sync"

	"github.com/sahiltalaviya99/portfolio/internal/bodylock"
	"github.com/sahiltalaviya99/portfolio/internal/content"
)

// Reason says how the dialog was dismissed.
type Reason int

const (
	CloseButton Reason = iota
	Escape
	Backdrop
	Unmount
)

func (r Reason) String() string {
	switch r {
	case Escape:
		return "escape"
	case Backdrop:
		return "backdrop"
	case Unmount:
		return "unmount"
	default:
		return "close-button"
	}
}

// Controller owns the dialog for one mounted projects section.
type Controller struct {
	mu          sync.Mutex
	body        bodylock.Body
	current     *content.Project
	lock        *bodylock.Lock
	imageLoaded bool
}

func New(body bodylock.Body) *Controller {
	return &Controller{body: body}
}

// Open shows p. Opening while another project is shown swaps the content
// and keeps the existing lock.
func (c *Controller) Open(p content.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		c.lock = bodylock.Overflow(c.body)
	}
	c.current = &p
	c.imageLoaded = false
}

// Current returns the shown project.
func (c *Controller) Current() (content.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return content.Project{}, false
	}
	return *c.current, true
}

// Close dismisses the dialog and reports whether one was open.
func (c *Controller) Close(Reason) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return false
	}
	c.current = nil
	c.imageLoaded = false
	c.lock.Release()
	c.lock = nil
	return true
}

// HandleKey closes the dialog on Escape.
func (c *Controller) HandleKey(key string) bool {
	if key != "Escape" {
		return false
	}
	return c.Close(Escape)
}

// PointerDown handles a press anywhere on the page; presses outside the
// dialog panel dismiss it.
func (c *Controller) PointerDown(insidePanel bool) bool {
	if insidePanel {
		return false
	}
	return c.Close(Backdrop)
}

// ImageLoaded hides the loading placeholder.
func (c *Controller) ImageLoaded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.imageLoaded = true
	}
}

// ShowPlaceholder reports whether the image spinner is visible.
func (c *Controller) ShowPlaceholder() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil && !c.imageLoaded
}

// Teardown releases the page when the section goes away.
func (c *Controller) Teardown() error {
	c.Close(Unmount)
	return nil
}

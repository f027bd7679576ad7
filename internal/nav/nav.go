// Package nav decides which page section the navigation bar highlights and
// where anchor links scroll to.
package nav

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// ActivationLine is the distance from the viewport top, in px, that a
	// section must straddle to become active.
	ActivationLine = 150
	// HeaderOffset is the height of the fixed header that anchor scrolls
	// leave clear.
	HeaderOffset = 80
	// ScrolledThreshold is the scroll offset past which the header
	// switches to its condensed style.
	ScrolledThreshold = 10
)

// SectionIDs are the anchor targets of the page, in document order. Both
// the navigation bar and anchor scrolling match on these exact strings.
var SectionIDs = []string{"home", "about", "experience", "projects", "skills", "contact"}

// Rect is an element's bounding box relative to the viewport top.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Layout resolves a section id to its current bounding box.
type Layout interface {
	Rect(id string) (Rect, bool)
}

// Rects is a Layout backed by a snapshot.
type Rects map[string]Rect

func (r Rects) Rect(id string) (Rect, bool) {
	rect, ok := r[id]
	return rect, ok
}

// Select returns the first section, in the given order, whose box
// straddles the activation line.
func Select(sections []string, layout Layout) (string, bool) {
	for _, id := range sections {
		rect, ok := layout.Rect(id)
		if !ok {
			continue
		}
		if rect.Top <= ActivationLine && rect.Bottom >= ActivationLine {
			return id, true
		}
	}
	return "", false
}

// Tracker holds the active section across scroll events.
type Tracker struct {
	mu       sync.Mutex
	sections []string
	active   string
	scrolled bool
}

// NewTracker starts with the first section active.
func NewTracker(sections []string) *Tracker {
	t := &Tracker{sections: append([]string(nil), sections...)}
	if len(sections) > 0 {
		t.active = sections[0]
	}
	return t
}

// Observe recomputes state for a scroll position and reports whether the
// active section changed. When nothing straddles the activation line the
// previous section stays active.
func (t *Tracker) Observe(scrollY float64, layout Layout) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.scrolled = scrollY > ScrolledThreshold

	id, ok := Select(t.sections, layout)
	if !ok || id == t.active {
		return false
	}
	t.active = id
	return true
}

// Active is the highlighted section id.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Scrolled reports whether the header is in its condensed style.
func (t *Tracker) Scrolled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scrolled
}

// Link is one navigation entry.
type Link struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Href string `json:"href"`
}

// Links builds navigation entries for the section ids.
func Links(sections []string) []Link {
	caser := cases.Title(language.English)
	links := make([]Link, 0, len(sections))
	for _, id := range sections {
		links = append(links, Link{ID: id, Name: caser.String(id), Href: "#" + id})
	}
	return links
}

// Anchors resolves a section id to its document offset.
type Anchors interface {
	OffsetTop(id string) (float64, bool)
}

// Offsets is an Anchors backed by a snapshot.
type Offsets map[string]float64

func (o Offsets) OffsetTop(id string) (float64, bool) {
	top, ok := o[id]
	return top, ok
}

// ScrollTarget resolves an in-page href ("#about") to the scroll offset
// that brings the section just below the fixed header. Hrefs that are not
// anchors or whose target does not exist report false and are skipped.
func ScrollTarget(anchors Anchors, href string) (float64, bool) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" || anchors == nil {
		return 0, false
	}
	top, ok := anchors.OffsetTop(id)
	if !ok {
		return 0, false
	}
	return max(0, top-HeaderOffset), true
}

// Package quotes cycles the contact section's philosophy lines.
package quotes

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Interval is how long each quote stays on screen.
const Interval = 5 * time.Second

var ErrNoQuotes = errors.New("quotes: rotator needs at least one quote")

// Quote is one line with its position in the list.
type Quote struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Change describes a crossfade from the outgoing to the incoming quote.
type Change struct {
	From Quote `json:"from"`
	To   Quote `json:"to"`
}

// Rotator advances through a fixed list of quotes on a timer. Each Run is
// one mounted lifetime: it starts at the first quote and stops the timer
// when its context ends.
type Rotator struct {
	quotes   []string
	interval time.Duration
	clock    clockwork.Clock
	onChange func(Change)

	mu    sync.Mutex
	index int
}

// Option configures a Rotator.
type Option func(*Rotator)

func WithInterval(d time.Duration) Option {
	return func(r *Rotator) { r.interval = d }
}

func WithClock(c clockwork.Clock) Option {
	return func(r *Rotator) { r.clock = c }
}

// OnChange registers a callback invoked after every advance. It runs on
// the rotator's goroutine and must not block.
func OnChange(fn func(Change)) Option {
	return func(r *Rotator) { r.onChange = fn }
}

func NewRotator(quotes []string, opts ...Option) (*Rotator, error) {
	if len(quotes) == 0 {
		return nil, ErrNoQuotes
	}
	r := &Rotator{
		quotes:   append([]string(nil), quotes...),
		interval: Interval,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Current is the quote on screen.
func (r *Rotator) Current() Quote {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quote(r.index)
}

func (r *Rotator) quote(i int) Quote {
	return Quote{Index: i, Text: r.quotes[i]}
}

// Len is the number of quotes in rotation.
func (r *Rotator) Len() int { return len(r.quotes) }

// Run rotates until ctx is done. It always begins from the first quote.
func (r *Rotator) Run(ctx context.Context) error {
	r.mu.Lock()
	r.index = 0
	r.mu.Unlock()

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			// A tick racing cancellation must not advance.
			if ctx.Err() != nil {
				return nil
			}
			r.advance()
		}
	}
}

func (r *Rotator) advance() {
	r.mu.Lock()
	from := r.quote(r.index)
	r.index = (r.index + 1) % len(r.quotes)
	to := r.quote(r.index)
	r.mu.Unlock()

	if r.onChange != nil {
		r.onChange(Change{From: from, To: to})
	}
}

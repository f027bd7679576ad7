// Package theme holds the light/dark display mode. State changes only go
// through Reduce; there is no ambient mutation.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Theme is the display mode.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"

	Default = Dark
)

var ErrInvalidTheme = errors.New("invalid theme")

// Parse validates a theme name.
func Parse(s string) (Theme, error) {
	switch t := Theme(s); t {
	case Dark, Light:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) IsDark() bool { return t == Dark }

// State is the theme slice of application state.
type State struct {
	Theme Theme `json:"theme"`
}

// InitialState is dark.
func InitialState() State { return State{Theme: Default} }

// Action is a state transition.
type Action interface {
	apply(State) State
}

// SetTheme replaces the theme. Invalid themes leave the state unchanged.
type SetTheme struct{ Theme Theme }

func (a SetTheme) apply(s State) State {
	if _, err := Parse(string(a.Theme)); err != nil {
		return s
	}
	s.Theme = a.Theme
	return s
}

// ToggleTheme flips between dark and light.
type ToggleTheme struct{}

func (ToggleTheme) apply(s State) State {
	s.Theme = s.Theme.Opposite()
	return s
}

// Reduce applies an action to a state.
func Reduce(s State, a Action) State {
	return a.apply(s)
}

// Store is a process-wide holder for State.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore(initial State) *Store {
	return &Store{state: initial}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces the action into the store and returns the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

type ctxKey struct{}

// WithContext attaches a theme to ctx.
func WithContext(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the theme attached to ctx, or the default.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(ctxKey{}).(Theme); ok {
		return t
	}
	return Default
}

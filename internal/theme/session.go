package theme

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie carrying the visitor's theme.
const SessionName = "portfolio-ui"

const sessionKeyTheme = "theme"

// Sessions binds a visitor's theme to a browser-session cookie. Nothing is
// stored server side, and the cookie has no Max-Age so the choice is gone
// once the browser session ends.
type Sessions struct {
	store *sessions.CookieStore
}

// NewSessions derives the cookie signing key from secret.
func NewSessions(secret string, secure bool) *Sessions {
	key := sha256.Sum256([]byte(secret))

	store := sessions.NewCookieStore(key[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: store}
}

// Load returns the visitor's theme state. Missing or tampered cookies
// yield the initial state.
func (s *Sessions) Load(r *http.Request) State {
	sess, err := s.store.Get(r, SessionName)
	if err != nil {
		return InitialState()
	}
	raw, _ := sess.Values[sessionKeyTheme].(string)
	t, err := Parse(raw)
	if err != nil {
		return InitialState()
	}
	return State{Theme: t}
}

// Dispatch reduces a into the visitor's state and writes the cookie.
func (s *Sessions) Dispatch(w http.ResponseWriter, r *http.Request, a Action) (State, error) {
	next := Reduce(s.Load(r), a)

	// Get never returns a nil session, even when decoding fails.
	sess, _ := s.store.Get(r, SessionName)
	sess.Values[sessionKeyTheme] = string(next.Theme)
	if err := sess.Save(r, w); err != nil {
		return State{}, err
	}
	return next, nil
}

package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, s := range []string{"dark", "light"} {
		got, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, Theme(s), got)
	}
	for _, s := range []string{"", "Dark", "sepia"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidTheme, s)
	}
}

func TestReduce(t *testing.T) {
	s := InitialState()
	assert.Equal(t, Dark, s.Theme)

	s = Reduce(s, ToggleTheme{})
	assert.Equal(t, Light, s.Theme)
	s = Reduce(s, ToggleTheme{})
	assert.Equal(t, Dark, s.Theme)

	s = Reduce(s, SetTheme{Theme: Light})
	assert.Equal(t, Light, s.Theme)
	s = Reduce(s, SetTheme{Theme: Light})
	assert.Equal(t, Light, s.Theme)

	s = Reduce(s, SetTheme{Theme: "neon"})
	assert.Equal(t, Light, s.Theme, "invalid set is ignored")
}

func TestStore_ExactlyOneThemeUnderConcurrency(t *testing.T) {
	store := NewStore(InitialState())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(ToggleTheme{})
		}()
	}
	wg.Wait()

	assert.Equal(t, Dark, store.State().Theme, "an even number of toggles lands on the start")
}

func TestContext(t *testing.T) {
	assert.Equal(t, Default, FromContext(context.Background()))
	ctx := WithContext(context.Background(), Light)
	assert.Equal(t, Light, FromContext(ctx))
}

func TestSessions_RoundTrip(t *testing.T) {
	s := NewSessions("test-secret", false)

	req := httptest.NewRequest(http.MethodPost, "/api/theme/toggle", nil)
	assert.Equal(t, Dark, s.Load(req).Theme)

	rec := httptest.NewRecorder()
	state, err := s.Dispatch(rec, req, ToggleTheme{})
	require.NoError(t, err)
	assert.Equal(t, Light, state.Theme)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionName, cookies[0].Name)
	assert.Zero(t, cookies[0].MaxAge, "browser-session cookie")
	assert.True(t, cookies[0].Expires.IsZero())

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[0])
	assert.Equal(t, Light, s.Load(next).Theme)
}

func TestSessions_TamperedCookieFallsBack(t *testing.T) {
	s := NewSessions("test-secret", false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionName, Value: "garbage"})
	assert.Equal(t, Dark, s.Load(req).Theme)

	other := NewSessions("other-secret", false)
	rec := httptest.NewRecorder()
	_, err := other.Dispatch(rec, httptest.NewRequest(http.MethodPost, "/", nil), SetTheme{Theme: Light})
	require.NoError(t, err)

	forged := httptest.NewRequest(http.MethodGet, "/", nil)
	forged.AddCookie(rec.Result().Cookies()[0])
	assert.Equal(t, Dark, s.Load(forged).Theme, "cookie signed with another key")
}

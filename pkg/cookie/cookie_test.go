package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/cookie"
)

const secret = "0123456789abcdef0123456789abcdef"

// replay copies Set-Cookie headers from a response onto a new request.
func replay(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManager(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithMaxAge(60), cookie.WithSecure(true))
		rec := httptest.NewRecorder()
		m.Set(rec, "lang", "ca,es")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, 60, cookies[0].MaxAge)
		require.True(t, cookies[0].Secure)
		require.True(t, cookies[0].HttpOnly)
		require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

		v, err := m.Get(replay(t, rec), "lang")
		require.NoError(t, err)
		require.Equal(t, "ca,es", v)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()

		_, err := cookie.New().Get(httptest.NewRequest(http.MethodGet, "/", nil), "lang")
		require.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("delete expires cookie", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		cookie.New().Delete(rec, "lang")
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, -1, cookies[0].MaxAge)
	})
}

func TestSigned(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(secret))
		require.True(t, m.Signed())

		rec := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(rec, "lang", "en_US"))

		v, err := m.GetSigned(replay(t, rec), "lang")
		require.NoError(t, err)
		require.Equal(t, "en_US", v)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(secret))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "ZW4.AAAA"})

		_, err := m.GetSigned(req, "lang")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("short secret disables signing", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret("short"))
		require.False(t, m.Signed())
		require.ErrorIs(t, m.SetSigned(httptest.NewRecorder(), "lang", "ca"), cookie.ErrNoSecret)
	})
}

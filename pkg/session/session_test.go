package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/session"
)

func TestSessionValues(t *testing.T) {
	t.Parallel()

	s := session.New("id", "token", time.Now().Add(time.Hour))
	require.True(t, s.IsNew())
	require.True(t, s.IsDirty())

	s.SetValue("lang", "ca_ES")
	s.SetValue("fallbacks", []any{"es", "en"})
	s.SetValue("visits", 3)

	v, ok := s.String("lang")
	require.True(t, ok)
	assert.Equal(t, "ca_ES", v)

	v, ok = s.String("fallbacks")
	require.True(t, ok)
	assert.Equal(t, "es,en", v)

	_, ok = s.String("missing")
	assert.False(t, ok)

	n, err := session.Value[int](s, "visits")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = session.Value[string](s, "visits")
	require.ErrorIs(t, err, session.ErrTypeMismatch)
	assert.Equal(t, "en", session.ValueOr(s, "missing", "en"))

	s.ClearDirty()
	s.DeleteValue("missing")
	assert.False(t, s.IsDirty())
	s.DeleteValue("visits")
	assert.True(t, s.IsDirty())
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore()

	s := session.New("id-1", "tok-1", time.Now().Add(time.Hour))
	s.SetValue("lang", "en")
	require.NoError(t, store.Save(ctx, s))
	assert.False(t, s.IsDirty())

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	v, _ := got.String("lang")
	assert.Equal(t, "en", v)

	// copies are isolated from the stored value
	got.SetValue("lang", "fr")
	again, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	v, _ = again.String("lang")
	assert.Equal(t, "en", v)

	expired := session.New("id-2", "tok-2", time.Now().Add(-time.Minute))
	require.NoError(t, store.Save(ctx, expired))
	_, err = store.Get(ctx, "tok-2")
	require.ErrorIs(t, err, session.ErrExpired)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	_, err = store.Get(ctx, "tok-1")
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestManager(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr := session.NewManager(session.NewMemoryStore(), session.WithCookieName("sid"))

	t.Run("no cookie", func(t *testing.T) {
		t.Parallel()

		s, err := mgr.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		require.Nil(t, s)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: "nope"})
		s, err := mgr.Load(ctx, req)
		require.NoError(t, err)
		require.Nil(t, s)
	})

	t.Run("save and load", func(t *testing.T) {
		t.Parallel()

		s, err := mgr.Start()
		require.NoError(t, err)
		require.NotEmpty(t, s.ID)
		require.NotEmpty(t, s.Token)
		s.SetValue("lang", "ca")

		rec := httptest.NewRecorder()
		require.NoError(t, mgr.Save(ctx, rec, s))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "sid", cookies[0].Name)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookies[0])
		loaded, err := mgr.Load(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		v, _ := loaded.String("lang")
		require.Equal(t, "ca", v)

		// clean sessions are not rewritten
		rec = httptest.NewRecorder()
		require.NoError(t, mgr.Save(ctx, rec, loaded))
		require.Empty(t, rec.Result().Cookies())
	})

	t.Run("context", func(t *testing.T) {
		t.Parallel()

		require.Nil(t, session.FromContext(ctx))
		s := session.New("id", "tok", time.Now().Add(time.Hour))
		require.Same(t, s, session.FromContext(session.WithContext(ctx, s)))
	})
}

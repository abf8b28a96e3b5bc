package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	defaultCookieName = "__sid"
	defaultMaxAge     = 30 * 24 * time.Hour
)

// Manager ties a Store to the session cookie.
type Manager struct {
	store      Store
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

func WithCookieName(name string) ManagerOption {
	return func(m *Manager) {
		if name != "" {
			m.cookieName = name
		}
	}
}

func WithMaxAge(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.maxAge = d
		}
	}
}

func WithSecureCookie(secure bool) ManagerOption {
	return func(m *Manager) { m.secure = secure }
}

func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{store: store, cookieName: defaultCookieName, maxAge: defaultMaxAge}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load returns the session referenced by the request cookie. A missing
// cookie, unknown token or expired session yields nil without error.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return nil, nil
	}

	s, err := m.store.Get(ctx, c.Value)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrExpired) {
		return nil, nil
	}
	return s, err
}

// Start creates a fresh, unsaved session.
func (m *Manager) Start() (*Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	return New(uuid.NewString(), token, time.Now().Add(m.maxAge)), nil
}

// Save persists a dirty session and (re)sends the cookie.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if !s.IsDirty() {
		return nil
	}
	if err := m.store.Save(ctx, s); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    s.Token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Destroy removes the session and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s != nil {
		if err := m.store.Delete(ctx, s.Token); err != nil {
			return err
		}
	}
	http.SetCookie(w, &http.Cookie{Name: m.cookieName, Value: "", Path: "/", MaxAge: -1})
	return nil
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

type ctxKey struct{}

// WithContext stores s in ctx.
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session loaded for the request, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

package session

import (
	"fmt"
	"strings"
	"time"
)

// Session is a server-side bag of visitor preferences keyed by an opaque
// cookie token. The locale resolver reads the "lang" value from it.
type Session struct {
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
	Values    map[string]any `json:"values"`
	ID        string         `json:"id"`
	Token     string         `json:"token"`

	dirty bool
	isNew bool
}

// New creates an unsaved session.
func New(id, token string, expiresAt time.Time) *Session {
	return &Session{
		ID:        id,
		Token:     token,
		Values:    make(map[string]any),
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
		dirty:     true,
		isNew:     true,
	}
}

func (s *Session) SetValue(key string, val any) {
	if s.Values == nil {
		s.Values = make(map[string]any)
	}
	s.Values[key] = val
	s.dirty = true
}

func (s *Session) GetValue(key string) (any, bool) {
	val, ok := s.Values[key]
	return val, ok
}

// DeleteValue marks the session dirty only when the key existed.
func (s *Session) DeleteValue(key string) {
	if _, ok := s.Values[key]; ok {
		delete(s.Values, key)
		s.dirty = true
	}
}

// String returns a value as text. Lists (as stored by JSON backends) are
// joined with commas, so ["es","fr"] reads back as "es,fr".
func (s *Session) String(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	val, ok := s.GetValue(key)
	if !ok || val == nil {
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case []string:
		return strings.Join(v, ","), true
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ","), true
	default:
		return fmt.Sprint(v), true
	}
}

func (s *Session) IsDirty() bool { return s.dirty }
func (s *Session) IsNew() bool   { return s.isNew }

// ClearDirty is called by stores after persisting.
func (s *Session) ClearDirty() {
	s.dirty = false
	s.isNew = false
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Value returns a typed value.
func Value[T any](s *Session, key string) (T, error) {
	var zero T
	if s == nil {
		return zero, ErrNotFound
	}
	val, ok := s.GetValue(key)
	if !ok {
		return zero, ErrNotFound
	}
	typed, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrTypeMismatch, key)
	}
	return typed, nil
}

// ValueOr returns def when the key is missing or has another type.
func ValueOr[T any](s *Session, key string, def T) T {
	if v, err := Value[T](s, key); err == nil {
		return v
	}
	return def
}

package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/session"
)

type sessionHolderKey struct{}

type sessionHolder struct {
	mu sync.Mutex
	s  *session.Session
}

// Session loads the request's session, if any, into the request context
// and saves it, when changed, just before the response headers go out.
// Handlers start a new session with session.Manager.Start and register it
// with SetSession.
func Session(m *session.Manager, log *slog.Logger) Middleware {
	if log == nil {
		log = logger.NewNope()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			s, err := m.Load(ctx, r)
			if err != nil {
				log.WarnContext(ctx, "session load failed", slog.String("error", err.Error()))
			}

			holder := &sessionHolder{s: s}
			ctx = session.WithContext(ctx, s)
			ctx = context.WithValue(ctx, sessionHolderKey{}, holder)

			rw := WrapResponseWriter(w)
			save := sync.OnceFunc(func() {
				s := holder.get()
				if s == nil {
					return
				}
				if err := m.Save(ctx, rw, s); err != nil {
					log.ErrorContext(ctx, "session save failed", slog.String("error", err.Error()))
				}
			})
			rw.OnBeforeWrite(save)

			next.ServeHTTP(rw, r.WithContext(ctx))
			if !rw.Written() {
				save()
			}
		})
	}
}

// SetSession makes s the session saved at the end of the request. It
// reports false when the Session middleware is not installed.
func SetSession(r *http.Request, s *session.Session) bool {
	h, ok := r.Context().Value(sessionHolderKey{}).(*sessionHolder)
	if !ok {
		return false
	}
	h.mu.Lock()
	h.s = s
	h.mu.Unlock()
	return true
}

// GetSession returns the current request session, including one set with
// SetSession, or nil.
func GetSession(r *http.Request) *session.Session {
	return sessionFrom(r.Context())
}

func sessionFrom(ctx context.Context) *session.Session {
	if h, ok := ctx.Value(sessionHolderKey{}).(*sessionHolder); ok {
		return h.get()
	}
	return session.FromContext(ctx)
}

func (h *sessionHolder) get() *session.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.s
}

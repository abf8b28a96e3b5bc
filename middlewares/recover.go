package middlewares

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/dmitrymomot/localize/pkg/logger"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures Recover.
type RecoverConfig struct {
	Logger            *slog.Logger
	ErrorHandler      ErrorHandler
	StackSize         int
	DisablePrintStack bool
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

func WithRecoverLogger(l *slog.Logger) RecoverOption {
	return func(cfg *RecoverConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

func WithRecoverErrorHandler(h ErrorHandler) RecoverOption {
	return func(cfg *RecoverConfig) {
		if h != nil {
			cfg.ErrorHandler = h
		}
	}
}

func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.StackSize = size
	}
}

// WithRecoverDisablePrintStack leaves the stack trace out of logs.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// Recover turns a handler panic into a logged *PanicError passed to the
// error handler. http.ErrAbortHandler is re-raised.
func Recover(opts ...RecoverOption) Middleware {
	cfg := &RecoverConfig{
		Logger:       logger.NewNope(),
		ErrorHandler: DefaultErrorHandler,
		StackSize:    DefaultStackSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := WrapResponseWriter(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				pe := &PanicError{Value: rec}
				attrs := []any{slog.Any("panic", rec)}
				if !cfg.DisablePrintStack {
					stack := make([]byte, cfg.StackSize)
					pe.Stack = stack[:runtime.Stack(stack, false)]
					attrs = append(attrs, slog.String("stack", string(pe.Stack)))
				}
				cfg.Logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !rw.Written() {
					cfg.ErrorHandler(rw, r, pe)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

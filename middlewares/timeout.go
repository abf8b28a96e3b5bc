package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/localize/pkg/logger"
)

// DefaultTimeout is used when Timeout gets a non-positive duration.
const DefaultTimeout = 30 * time.Second

// TimeoutConfig configures Timeout.
type TimeoutConfig struct {
	Logger       *slog.Logger
	ErrorHandler ErrorHandler
	Timeout      time.Duration
}

// TimeoutOption configures TimeoutConfig.
type TimeoutOption func(*TimeoutConfig)

func WithTimeoutLogger(l *slog.Logger) TimeoutOption {
	return func(cfg *TimeoutConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

func WithTimeoutErrorHandler(h ErrorHandler) TimeoutOption {
	return func(cfg *TimeoutConfig) {
		if h != nil {
			cfg.ErrorHandler = h
		}
	}
}

// Timeout puts a deadline on the request context. Handlers must watch
// ctx.Done(); when one returns after the deadline without having written a
// response, a *TimeoutError goes to the error handler.
func Timeout(timeout time.Duration, opts ...TimeoutOption) Middleware {
	cfg := &TimeoutConfig{
		Logger:       logger.NewNope(),
		ErrorHandler: DefaultErrorHandler,
		Timeout:      timeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), cfg.Timeout)
			defer cancel()

			rw := WrapResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !rw.Written() {
				cfg.Logger.WarnContext(ctx, "request timeout", slog.String("timeout", cfg.Timeout.String()))
				cfg.ErrorHandler(rw, r, &TimeoutError{Duration: cfg.Timeout})
			}
		})
	}
}

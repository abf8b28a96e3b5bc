package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON logger at info level with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(os.Stdout, Config{}), extractors...))
}

// NewWithConfig creates a stdout logger using the level and format from cfg.
// Sentry is wired in when cfg.Sentry.DSN is set.
func NewWithConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	if cfg.Sentry.DSN != "" {
		return NewWithSentry(cfg, extractors...)
	}
	return slog.New(NewLogHandlerDecorator(newHandler(os.Stdout, cfg), extractors...))
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

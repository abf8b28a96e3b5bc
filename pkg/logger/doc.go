// Package logger builds slog loggers for the localize server.
//
// Loggers write JSON (or text) to stdout and can fan out to Sentry. Context
// extractors attach request-scoped attributes to every record, so a handler
// that logs with the request context gets the request ID and the resolved
// locale for free:
//
//	log := logger.NewWithConfig(cfg.Log,
//		middlewares.RequestIDExtractor(),
//		i18n.LogExtractor(),
//	)
//	log.InfoContext(r.Context(), "rendered price")
//
// Use NewNope in tests.
package logger

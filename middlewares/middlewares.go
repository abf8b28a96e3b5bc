package middlewares

import (
	"net/http"
)

// Middleware wraps an http.Handler. It matches chi's Use signature.
type Middleware = func(http.Handler) http.Handler

// ErrorHandler writes the response for an error raised by a middleware.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler answers 504 for timeouts and 500 for everything else,
// with the status text as a plain body.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	code := http.StatusInternalServerError
	if IsTimeoutError(err) {
		code = http.StatusGatewayTimeout
	}
	http.Error(w, http.StatusText(code), code)
}

package htmx

import (
	"net/http"
	"strings"
)

// Request headers.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXCurrentURL = "HX-Current-URL"
	HeaderHXTarget     = "HX-Target"
)

// Response headers.
const (
	HeaderHXRefresh = "HX-Refresh"
	HeaderHXTrigger = "HX-Trigger"
)

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// CurrentURL returns the browser URL reported by HTMX, or "".
func CurrentURL(r *http.Request) string {
	return r.Header.Get(HeaderHXCurrentURL)
}

// Refresh asks the client to do a full page reload.
func Refresh(w http.ResponseWriter) {
	w.Header().Set(HeaderHXRefresh, "true")
}

// Trigger fires client-side events after the response is processed.
// Events already set on w are kept.
func Trigger(w http.ResponseWriter, events ...string) {
	if len(events) == 0 {
		return
	}
	list := events
	if prev := w.Header().Get(HeaderHXTrigger); prev != "" {
		list = append([]string{prev}, events...)
	}
	w.Header().Set(HeaderHXTrigger, strings.Join(list, ", "))
}

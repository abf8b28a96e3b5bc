package health

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
)

// RetryAfter is the Retry-After value, in seconds, sent with a failed
// readiness probe.
const RetryAfter = "5"

// LivenessHandler always answers OK while the process is up.
func LivenessHandler() http.HandlerFunc {
	alive := &Response{Status: StatusHealthy}
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, alive)
	}
}

// ReadinessHandler runs checks on every request and answers 503 when any
// of them fails. The plain text body names each failing check with its
// error, one per line.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		resp := run(r.Context(), checks, cfg)

		status := http.StatusOK
		if resp.Status == StatusUnhealthy {
			status = http.StatusServiceUnavailable
			w.Header().Set("Retry-After", RetryAfter)
		}
		respond(w, r, status, resp)
	}
}

// respond writes resp as JSON or plain text. HEAD requests get the
// headers only.
func respond(w http.ResponseWriter, r *http.Request, status int, resp *Response) {
	w.Header().Set("Cache-Control", "no-store")

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(resp)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = io.WriteString(w, plainText(resp))
	}
}

func plainText(resp *Response) string {
	if resp.Status == StatusHealthy {
		return "OK"
	}

	var failed []string
	for name, c := range resp.Checks {
		if c.Status == StatusUnhealthy {
			failed = append(failed, name)
		}
	}
	slices.Sort(failed)

	var b strings.Builder
	b.WriteString("Service Unavailable")
	for _, name := range failed {
		fmt.Fprintf(&b, "\n%s: %s", name, resp.Checks[name].Error)
	}
	return b.String()
}

func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// Package htmx detects HTMX requests and sets the response headers the
// locale switcher needs.
//
// A language picker posting with hx-post gets the page reloaded in the new
// locale:
//
//	if htmx.IsHTMX(r) {
//		htmx.Trigger(w, "localeChanged")
//		htmx.Refresh(w)
//	}
package htmx

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language/display"

	"github.com/dmitrymomot/localize/middlewares"
	"github.com/dmitrymomot/localize/pkg/format"
	"github.com/dmitrymomot/localize/pkg/htmx"
	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/locale"
)

// LocaleInfo describes a locale in JSON responses.
type LocaleInfo struct {
	Locale   string `json:"locale"`
	Tag      string `json:"tag"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// IndexResponse is the body of GET /.
type IndexResponse struct {
	LocaleInfo
	Country  string `json:"country"`
	Method   string `json:"method"`
	Greeting string `json:"greeting"`
	Price    string `json:"price"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newLocaleInfo(l locale.Locale) LocaleInfo {
	tag := l.Tag()
	info := LocaleInfo{Locale: l.String(), Tag: tag.String(), Language: l.Language()}
	if name := display.Self.Name(tag); name != "" {
		info.Name = name
	} else {
		info.Name = display.English.Tags().Name(tag)
	}
	return info
}

func newIndexResponse(l *i18n.Localizer) IndexResponse {
	rc := l.Context()
	return IndexResponse{
		LocaleInfo: newLocaleInfo(rc.Locale()),
		Country:    rc.Country(),
		Method:     rc.Method().String(),
		Greeting:   l.T("Hello"),
		Price:      l.FormatCurrency(1234.5),
	}
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, newIndexResponse(middlewares.GetLocalizer(r)))
}

func (a *App) handleCurrency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var opts []format.CurrencyOption
	if p := q.Get("precision"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			a.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "precision must be an integer"})
			return
		}
		opts = append(opts, format.WithPrecision(n))
	}
	if u := q.Get("unit"); u != "" {
		opts = append(opts, format.WithUnit(u))
	}

	writeText(w, middlewares.GetLocalizer(r).FormatCurrency(q.Get("amount"), opts...))
}

func (a *App) handleSentence(w http.ResponseWriter, r *http.Request) {
	var items []string
	for item := range strings.SplitSeq(r.URL.Query().Get("items"), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	writeText(w, middlewares.GetLocalizer(r).ToSentence(items))
}

// handleDate renders event[starts_at] selects. ?at= takes an RFC 3339
// timestamp to preselect; without it nothing is selected.
func (a *App) handleDate(w http.ResponseWriter, r *http.Request) {
	var at *time.Time
	if raw := r.URL.Query().Get("at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			a.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "at must be an RFC 3339 timestamp"})
			return
		}
		at = &t
	}

	fields := middlewares.GetLocalizer(r).DatetimeSelect("event", "starts_at", at)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := format.Render(fields).Render(r.Context(), w); err != nil {
		a.log.ErrorContext(r.Context(), "render date selects", slog.String("error", err.Error()))
	}
}

func (a *App) handleLocales(w http.ResponseWriter, r *http.Request) {
	names, err := a.Registry.List(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, locale.ErrNotListable) {
			status = http.StatusNotImplemented
		}
		a.writeJSON(w, r, status, errorResponse{Error: err.Error()})
		return
	}

	out := make([]LocaleInfo, 0, len(names))
	for _, name := range names {
		l, err := locale.Parse(name)
		if err != nil {
			continue
		}
		out = append(out, newLocaleInfo(l))
	}
	a.writeJSON(w, r, http.StatusOK, out)
}

// handleSetLocale persists the locale in the form field named like the
// locale parameter to the cookie and the session, then switches the
// current request over to it and the country that goes with it.
func (a *App) handleSetLocale(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue(a.localeParam()))
	l, err := locale.Parse(name)
	if err != nil || !a.Registry.HasLocale(r.Context(), name) {
		a.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: "unsupported locale"})
		return
	}

	key := a.localeParam()
	if a.Cookies.Signed() {
		if err := a.Cookies.SetSigned(w, key, l.String()); err != nil {
			a.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
	} else {
		a.Cookies.Set(w, key, l.String())
	}

	s := middlewares.GetSession(r)
	if s == nil {
		if s, err = a.Sessions.Start(); err != nil {
			a.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		middlewares.SetSession(r, s)
	}
	s.SetValue(key, l.String())

	lz := middlewares.GetLocalizer(r)
	lz.Context().SetLocale(l)
	lz.Context().SetCountry(a.Resolver.CountryFor(l))
	if htmx.IsHTMX(r) {
		htmx.Trigger(w, "localeChanged")
		htmx.Refresh(w)
	}
	a.writeJSON(w, r, http.StatusOK, newIndexResponse(lz))
}

func (a *App) localeParam() string {
	if a.cfg.LocaleParam != "" {
		return a.cfg.LocaleParam
	}
	return middlewares.DefaultLocaleKey
}

func (a *App) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.ErrorContext(r.Context(), "encode response", slog.String("error", err.Error()))
	}
}

func writeText(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s))
}

// Package locale resolves the active language for inbound page requests
// and redirects path-less requests to a localized path.
package locale

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

const (
	CookieName    = "NEXT_LOCALE"
	DefaultLocale = "ro"

	cookieMaxAge = 365 * 24 * 60 * 60 // one year
)

// Supported locales, default first. The matcher's order must mirror this
// slice so a match index maps back to a locale string.
var (
	supported = []string{"ro", "en"}
	tags      = []language.Tag{language.Romanian, language.English}
	matcher   = language.NewMatcher(tags)
)

// Request paths that are never localized.
var bypassPrefixes = []string{"/api", "/admin", "/static", "/_", "/healthz", "/favicon.ico"}

// Supported reports whether loc is a member of the supported locale set.
func Supported(loc string) bool {
	for _, s := range supported {
		if s == loc {
			return true
		}
	}
	return false
}

type Resolver struct {
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Resolver {
	return &Resolver{logger: logger.With().Str("middleware", "locale").Logger()}
}

// Middleware applies locale resolution to page routes. Paths already
// carrying a valid locale prefix pass through with the cookie refreshed;
// anything else redirects to the same path prefixed with the resolved
// locale. API, admin, internal, and static paths bypass entirely.
func (rv *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if bypass(path) {
			next.ServeHTTP(w, r)
			return
		}

		if loc, ok := localeFromPath(path); ok {
			setLocaleCookie(w, loc)
			next.ServeHTTP(w, r)
			return
		}

		loc := rv.resolve(r)
		target := "/" + loc
		if path != "/" {
			target += path
		}
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
}

// resolve picks the locale: cookie first, then Accept-Language negotiation,
// then the default. Negotiation failures always fall through to the
// default; this path never panics.
func (rv *Resolver) resolve(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && Supported(c.Value) {
		return c.Value
	}
	return rv.negotiate(r.Header.Get("Accept-Language"))
}

func (rv *Resolver) negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		rv.logger.Debug().Str("acceptLanguage", acceptLanguage).Msg("unparseable Accept-Language, using default locale")
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(wanted...)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return DefaultLocale
	}
	return supported[idx]
}

// localeFromPath returns the leading locale segment of path, if valid.
func localeFromPath(path string) (string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, _, _ := strings.Cut(trimmed, "/")
	if Supported(seg) {
		return seg, true
	}
	return "", false
}

func bypass(path string) bool {
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func setLocaleCookie(w http.ResponseWriter, loc string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    loc,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		Expires:  time.Now().Add(cookieMaxAge * time.Second),
		SameSite: http.SameSiteLaxMode,
	})
}

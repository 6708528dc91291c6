package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"server/internal/domain"
)

type localeContextKey struct{}
type countryContextKey struct{}

var (
	// LocaleKey stores the resolved ISO 639-1 language code.
	LocaleKey = localeContextKey{}
	// CountryKey stores the resolved ISO country code.
	CountryKey = countryContextKey{}
)

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// supportedTags lists the content languages in matcher priority order. The
// first entry is the fallback.
var supportedTags = []language.Tag{
	language.English,
	language.Hindi,
	language.Telugu,
	language.Tamil,
	language.Spanish,
	language.French,
	language.German,
}

var languageMatcher = language.NewMatcher(supportedTags)

// countryLanguages maps countries to a content language where the mapping is
// unambiguous enough to be useful as a last resort.
var countryLanguages = map[string]string{
	"ES": "es", "MX": "es", "AR": "es", "CO": "es",
	"FR": "fr",
	"DE": "de", "AT": "de",
	"IN": "hi",
}

// I18N resolves the preferred content language for each request from the
// X-Locale header, then Accept-Language, then the caller's country. The
// resolved ISO code is stored in the request context; generation endpoints
// use it as the default output language.
func I18N(lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := resolveCountry(r, lookup)
			locale := detectLocale(r, country)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			if country != "" {
				ctx = context.WithValue(ctx, CountryKey, country)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, country string) string {
	if v := r.Header.Get("X-Locale"); v != "" {
		if code := matchLocale(v); code != "" {
			return code
		}
	}
	if v := r.Header.Get("Accept-Language"); v != "" {
		if code := matchLocale(v); code != "" {
			return code
		}
	}
	if code, ok := countryLanguages[country]; ok {
		return code
	}
	return domain.LanguageCode(domain.DefaultLanguage)
}

// matchLocale runs the requested languages through the matcher and returns
// the base code of the winner, or "" when nothing parses.
func matchLocale(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, index, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	base, _ := supportedTags[index].Base()
	return base.String()
}

func resolveCountry(r *http.Request, lookup CountryLookup) string {
	for _, key := range []string{"X-Country-Code", "CF-IPCountry", "X-Appengine-Country"} {
		if val := strings.TrimSpace(r.Header.Get(key)); val != "" {
			return strings.ToUpper(val)
		}
	}
	if lookup != nil {
		if ip := ClientIP(r); ip != "" {
			if country, err := lookup(ip); err == nil && country != "" {
				return strings.ToUpper(country)
			}
		}
	}
	return ""
}

// ClientIP returns the best-effort client IP address for the request.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LocaleFromContext returns the resolved language code, defaulting to "en".
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok && v != "" {
		return v
	}
	return "en"
}

// LanguageFromContext returns the display name of the resolved language.
func LanguageFromContext(ctx context.Context) string {
	return domain.LanguageFromCode(LocaleFromContext(ctx))
}

// CountryFromContext returns the ISO country code stored in the context.
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CountryKey).(string); ok {
		return v
	}
	return ""
}

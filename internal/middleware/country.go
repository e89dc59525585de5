package middleware

import (
	"context"
	"net/http"
	"strings"
)

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// Country resolves the client's country from its IP and stores it in the
// request context for logging. Resolution failures are ignored; the
// country is an enrichment, never a gate.
func Country(lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if lookup != nil {
				ip := clientIPForRateLimit(r)
				if code, err := lookup(ip); err == nil && code != "" {
					ctx := context.WithValue(r.Context(), countryKey, strings.ToUpper(code))
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CountryFromContext returns the resolved country code, or "" when absent.
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(countryKey).(string); ok {
		return v
	}
	return ""
}

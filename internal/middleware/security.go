// internal/middleware/security.go
//
// Security-header middleware for the JSON status endpoints.
//
// Injects headers on every response:
//
//   • Content-Security-Policy   –  nothing may load; responses are data only
//   • X-Frame-Options           –  click-jacking defence
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • Referrer-Policy           –  no Referer at all
//   • Cache-Control             –  configuration views are never cached
//
// Notes
// -----
// • Headers are set *before* next.ServeHTTP; handlers may still override
//   them, and the middleware never overwrites a value already present.
// • No HSTS: the status listener is plain HTTP on an internal address.

package middleware

import "net/http"

// Security sets hardening headers for every response.
func Security(next http.Handler) http.Handler {
	headers := [][2]string{
		{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
		{"X-Frame-Options", "DENY"},
		{"X-Content-Type-Options", "nosniff"},
		{"Referrer-Policy", "no-referrer"},
		{"Cache-Control", "no-store"},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, kv := range headers {
			if h.Get(kv[0]) == "" {
				h.Set(kv[0], kv[1])
			}
		}
		next.ServeHTTP(w, r)
	})
}

// internal/middleware/security.go
//
// Security-header middleware.
//
// Injects industry-standard headers on every response:
//
//   • Strict-Transport-Security  –  forces HTTPS (2 years + preload)
//   • Content-Security-Policy   –  sane default self-only policy
//   • X-Frame-Options           –  click-jacking defence
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • Referrer-Policy           –  drops path/query from Referer
//   • Permissions-Policy        –  disables powerful features by default
//
// Notes
// -----
// • Headers are set *before* next.ServeHTTP: anything added after the
//   handler's first write never reaches the wire.  The middleware never
//   overwrites a value a handler set earlier in the chain.
// • When Warta runs behind a TLS-terminating proxy, HSTS is still useful
//   because browsers see the portal’s domain as HTTPS.
// • Oxford commas, two spaces after periods.

package middleware

import "net/http"

// Security sets security headers for every response.
func Security(next http.Handler) http.Handler {
	const (
		hsts = "max-age=63072000; includeSubDomains; preload"
		csp  = "default-src 'self'; img-src 'self' data:; object-src 'none'; " +
			"base-uri 'self'; frame-ancestors 'none'"
		xfo   = "DENY"
		nosn  = "nosniff"
		refer = "strict-origin-when-cross-origin"
		perm  = "geolocation=(), microphone=(), camera=()"
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		if h.Get("Strict-Transport-Security") == "" {
			h.Set("Strict-Transport-Security", hsts)
		}
		if h.Get("Content-Security-Policy") == "" {
			h.Set("Content-Security-Policy", csp)
		}
		if h.Get("X-Frame-Options") == "" {
			h.Set("X-Frame-Options", xfo)
		}
		if h.Get("X-Content-Type-Options") == "" {
			h.Set("X-Content-Type-Options", nosn)
		}
		if h.Get("Referrer-Policy") == "" {
			h.Set("Referrer-Policy", refer)
		}
		if h.Get("Permissions-Policy") == "" {
			h.Set("Permissions-Policy", perm)
		}

		next.ServeHTTP(w, r)
	})
}

// internal/requestinfo/middleware.go
//
// HTTP middleware that enriches each request with *RequestInfo.
//
/*
Context
--------
This handler sits immediately after the legacy-redirect rewrite but before
site resolution.  For every request it:

  1. Parses the User-Agent header and Accept-Language list.
  2. Extracts the left-most public client IP from X-Forwarded-For or
     X-Real-IP, falling back to `r.RemoteAddr`.
  3. Performs a GeoLite2 lookup when a database is configured.
  4. Stores a `*RequestInfo` value in `request.Context` under an unexported
     key, so handlers can log UA, Geo, URL, and timestamp attributes without
     reparsing.

Notes
-----
  • All look-ups are read-only and pool-based, so the middleware is safe
    under heavy concurrency.
  • Oxford commas, two spaces after periods.
*/
package requestinfo

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

/*──────────────────────────── middleware ───────────────────────────────────*/

// Enrich wraps an http.Handler, attaches *RequestInfo, and forwards.
func Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		info := &RequestInfo{
			UA:        parseUA(r.UserAgent(), r.Header.Get("Accept-Language")),
			Geo:       lookupGeo(ip),
			URL:       r.URL, // pointer copy; safe for read-only access
			Timestamp: time.Now().UTC(),
		}

		zap.S().Debugw("request info",
			"ip", info.Geo.IP,
			"country", info.Geo.CountryISO,
			"browser", info.UA.Browser,
			"device", info.UA.Device,
			"bot", info.UA.IsBot,
			"path", r.URL.Path,
		)

		ctx := context.WithValue(r.Context(), ctxKey{}, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

/*──────────────────────────── client IP helper ─────────────────────────────*/

// clientIP extracts the left-most address from X-Forwarded-For or X-Real-IP,
// falling back to r.RemoteAddr ("ip:port").
func clientIP(r *http.Request) net.IP {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
				return ip
			}
		}
	}
	if xrip := r.Header.Get("X-Real-Ip"); xrip != "" {
		if ip := net.ParseIP(strings.TrimSpace(xrip)); ip != nil {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return nil
}

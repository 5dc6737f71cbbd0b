// internal/middleware/security.go
//
// Security-header middleware.
//
// Injects standard headers on every response:
//
//   • Content-Security-Policy   –  self-only, except the tracker script
//   • X-Frame-Options           –  click-jacking defence
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • Referrer-Policy           –  drops path/query from Referer
//
// Notes
// -----
// • Headers are set *before* next.ServeHTTP; once a handler writes the
//   status line, later header changes are lost.  A handler may still
//   override any of them.
// • The CSP allows inline scripts because the tracker snippet and the
//   custom-variable statements are rendered inline.
// • Oxford commas, two spaces after periods.

package middleware

import "net/http"

// TrackerOrigin is the host serving ga.js.
const TrackerOrigin = "https://ssl.google-analytics.com"

// Security sets security headers for every response.
func Security(next http.Handler) http.Handler {
	const (
		csp = "default-src 'self'; script-src 'self' 'unsafe-inline' " + TrackerOrigin + "; " +
			"img-src 'self' data: " + TrackerOrigin + "; object-src 'none'; " +
			"base-uri 'self'; frame-ancestors 'none'"
		xfo   = "DENY"
		nosn  = "nosniff"
		refer = "strict-origin-when-cross-origin"
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Frame-Options", xfo)
		h.Set("X-Content-Type-Options", nosn)
		h.Set("Referrer-Policy", refer)
		next.ServeHTTP(w, r)
	})
}

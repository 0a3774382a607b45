// internal/site/slug.go
//
// Slug validation.
//
// • ValidSlug(s) ─ reports whether s is a plausible site or category slug:
//   ASCII a-z, 0-9, and “-”, no leading/trailing/doubled dash, ≤ 100 bytes.
//
// Handlers call this before touching the database so garbage paths short-
// circuit to 404 without a query.
//
// Notes
// -----
// • No Unicode transliteration; slugs are generated ASCII-only upstream.

package site

// ValidSlug reports whether s is lower-kebab ASCII of sane length.
func ValidSlug(s string) bool {
	if s == "" || len(s) > 100 {
		return false
	}
	prevDash := true // disallows a leading dash
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevDash = false
		case c == '-':
			if prevDash {
				return false
			}
			prevDash = true
		default:
			return false
		}
	}
	return !prevDash // disallows a trailing dash
}

// internal/sitecookie/store.go
//
// Cookie-backed "current site" store.
//
// Context
//   Admin actions and bare navigation do not always carry the site slug in
//   the URL, so the last resolved site is remembered in a cookie pair for 30
//   days.  The id and slug cookies are written and cleared strictly together;
//   no other package may touch these cookie names, which is what keeps the
//   pair from drifting apart.
//
// Style
//   Two-space sentence spacing, Oxford comma, terse inline notes.
//
//------------------------------------------------------------------------------

package sitecookie

import (
	"net/http"
	"strconv"
	"time"
)

const (
	idCookie   = "warta_site_id"
	slugCookie = "warta_site_slug"

	// TTL is how long a remembered site survives without a fresh visit.
	TTL = 30 * 24 * time.Hour
)

// Store scopes the cookie pair to one deployment environment.  Secure is
// true in production so the pair never travels over plain HTTP there.
type Store struct {
	secure bool
}

// New returns a Store.  Pass secure=true for production-like deployments.
func New(secure bool) *Store {
	return &Store{secure: secure}
}

// Get returns the remembered site id, if any.
//
// ok == false when the cookie is missing or does not hold a number.
func (s *Store) Get(r *http.Request) (id uint64, ok bool) {
	c, err := r.Cookie(idCookie)
	if err != nil || c.Value == "" {
		return 0, false
	}
	id, convErr := strconv.ParseUint(c.Value, 10, 64)
	if convErr != nil {
		return 0, false
	}
	return id, true
}

// GetSlug returns the remembered site slug, if any.
func (s *Store) GetSlug(r *http.Request) (slug string, ok bool) {
	c, err := r.Cookie(slugCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Set writes both cookies as a pair with identical attributes and expiry.
func (s *Store) Set(w http.ResponseWriter, id uint64, slug string) {
	maxAge := int(TTL / time.Second)
	http.SetCookie(w, s.cookie(idCookie, strconv.FormatUint(id, 10), maxAge))
	http.SetCookie(w, s.cookie(slugCookie, slug, maxAge))
}

// Clear removes both cookies as a pair.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(idCookie, "", -1))
	http.SetCookie(w, s.cookie(slugCookie, "", -1))
}

func (s *Store) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	}
}

// internal/web/handlers.go
//
// Request handlers: root landing, site view, search, and cookie reset.
//
// Error mapping follows the resolution contract: a missing site is a plain
// 404, while an infrastructure failure surfaces as a generic 500 so
// monitoring never counts outages as not-founds.

package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/warta/internal/announcement"
	"github.com/yanizio/warta/internal/metrics"
	"github.com/yanizio/warta/internal/pagination"
	"github.com/yanizio/warta/internal/requestinfo"
	"github.com/yanizio/warta/internal/resolver"
	"github.com/yanizio/warta/internal/site"
)

//
// Root and cookie handlers
//

// handleRoot sends the visitor to their remembered site, or to the default
// site when nothing is remembered yet.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	slug := s.defaultSlug
	if remembered, ok := s.cookies.GetSlug(r); ok && site.ValidSlug(remembered) {
		slug = remembered
	}
	http.Redirect(w, r, "/site/"+slug, http.StatusFound)
}

// handleForget clears the remembered site pair.
func (s *Server) handleForget(w http.ResponseWriter, _ *http.Request) {
	s.cookies.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

//
// Site handlers
//

// sitePayload is the JSON shape both listing handlers share.
type sitePayload struct {
	Site    siteView              `json:"site"`
	Nav     []resolver.NavLink    `json:"nav"`
	Footer  resolver.Footer       `json:"footer"`
	Items   []announcement.Record `json:"items"`
	Meta    pagination.PageMeta   `json:"meta"`
	Warning string                `json:"warning,omitempty"`
}

type siteView struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	BrandColor string `json:"brandColor"`
	LogoPath   string `json:"logoPath,omitempty"`
}

// handleSite resolves the slug, remembers it, and lists announcements for
// the optional category filter.
func (s *Server) handleSite(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.resolveSite(w, r)
	if !ok {
		return
	}

	pg, ok := s.guardPagination(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	category := r.URL.Query().Get("category")

	items, err := s.announcements.List(ctx, sc.Site.ID, category, pg.Limit, pg.Skip)
	if err != nil {
		s.log.Errorw("announcement list failed", "slug", sc.Site.Slug, "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "could not load announcements")
		return
	}
	total, err := s.announcements.Count(ctx, sc.Site.ID, category)
	if err != nil {
		s.log.Errorw("announcement count failed", "slug", sc.Site.Slug, "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "could not load announcements")
		return
	}

	s.respondListing(w, sc, items, pg, total)
}

// handleSearch is the title-substring search listing.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.resolveSite(w, r)
	if !ok {
		return
	}

	pg, ok := s.guardPagination(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	q := r.URL.Query().Get("q")

	items, err := s.announcements.Search(ctx, sc.Site.ID, q, pg.Limit, pg.Skip)
	if err != nil {
		s.log.Errorw("announcement search failed", "slug", sc.Site.Slug, "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "could not search announcements")
		return
	}
	total, err := s.announcements.CountSearch(ctx, sc.Site.ID, q)
	if err != nil {
		s.log.Errorw("announcement search count failed", "slug", sc.Site.Slug, "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "could not search announcements")
		return
	}

	s.respondListing(w, sc, items, pg, total)
}

//
// Shared steps
//

// resolveSite maps the URL slug to a merged site context and remembers the
// site when it differs from the cookie.  On failure it writes the response
// itself and returns ok=false.
func (s *Server) resolveSite(w http.ResponseWriter, r *http.Request) (*resolver.Context, bool) {
	slug := chi.URLParam(r, "slug")
	if !site.ValidSlug(slug) {
		writeError(w, http.StatusNotFound, "not_found", "no such site")
		return nil, false
	}

	sc, err := s.resolver.Resolve(r.Context(), slug)
	switch {
	case errors.Is(err, resolver.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "no such site")
		return nil, false
	case err != nil:
		s.log.Errorw("site resolution failed", "slug", slug, "err", err)
		writeError(w, http.StatusInternalServerError, "resolution_failed",
			"temporary failure, please retry")
		return nil, false
	}

	// Visiting a site by URL is an explicit switch; update the pair.
	if remembered, ok := s.cookies.GetSlug(r); !ok || remembered != slug {
		s.cookies.Set(w, sc.Site.ID, slug)
	}

	if info := requestinfo.FromContext(r.Context()); info != nil && info.UA.IsBot {
		s.log.Debugw("bot visit", "slug", slug, "ua", info.UA.Raw)
	}

	return sc, true
}

// guardPagination validates page/limit and answers the out-of-range case.
// Advisory outcomes pass through; only the offset ceiling rejects.
func (s *Server) guardPagination(w http.ResponseWriter, r *http.Request) (pagination.Result, bool) {
	q := r.URL.Query()
	pg := pagination.Validate(q.Get("page"), q.Get("limit"))

	switch pg.Kind {
	case pagination.KindClamped:
		metrics.PaginationClampedTotal.Inc()
	case pagination.KindOffsetTooLarge:
		metrics.PaginationRejectedTotal.Inc()
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "offset_too_large",
			"message": pg.Message,
			"maxPage": pg.MaxPage,
		})
		return pg, false
	}

	return pg, true
}

// respondListing assembles the shared payload.
func (s *Server) respondListing(w http.ResponseWriter, sc *resolver.Context,
	items []announcement.Record, pg pagination.Result, total int) {

	page := pg.Skip/pg.Limit + 1
	writeJSON(w, http.StatusOK, sitePayload{
		Site: siteView{
			Slug:       sc.Site.Slug,
			Name:       sc.Site.Name,
			BrandColor: sc.Site.BrandColor,
			LogoPath:   sc.LogoPath,
		},
		Nav:     sc.Nav,
		Footer:  sc.Footer,
		Items:   items,
		Meta:    pagination.Meta(page, pg.Limit, total),
		Warning: pg.Message,
	})
}

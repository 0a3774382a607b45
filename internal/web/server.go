// internal/web/server.go
//
// HTTP surface of the portal core.
//
// Context
// -------
// Rendering proper lives elsewhere; these handlers are thin JSON glue that
// exercises the core in its intended order: legacy-redirect rewrite first,
// request enrichment, then slug resolution, then the pagination guard in
// front of every listing query.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
// • Max line length 100 columns.

package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/warta/internal/announcement"
	"github.com/yanizio/warta/internal/middleware"
	"github.com/yanizio/warta/internal/redirect"
	"github.com/yanizio/warta/internal/requestinfo"
	"github.com/yanizio/warta/internal/resolver"
	"github.com/yanizio/warta/internal/sitecookie"
)

// Server aggregates the collaborators the handlers need.
type Server struct {
	log           *zap.SugaredLogger
	resolver      *resolver.Resolver
	cookies       *sitecookie.Store
	announcements *announcement.Repository
	redirects     *redirect.Table
	defaultSlug   string
}

// New wires a Server.  defaultSlug is where the bare root lands when no
// site has been remembered yet.
func New(log *zap.SugaredLogger, res *resolver.Resolver, cookies *sitecookie.Store,
	ann *announcement.Repository, redirects *redirect.Table, defaultSlug string) *Server {

	return &Server{
		log:           log,
		resolver:      res,
		cookies:       cookies,
		announcements: ann,
		redirects:     redirects,
		defaultSlug:   defaultSlug,
	}
}

// Routes builds the full handler chain.  The legacy-redirect rewrite runs
// before anything else so old URL shapes never reach resolution.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(redirect.Middleware(s.redirects))
	r.Use(requestinfo.Enrich)
	r.Use(middleware.Security)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", s.handleRoot)
	r.Post("/forget", s.handleForget)

	r.Route("/site/{slug}", func(r chi.Router) {
		r.Get("/", s.handleSite)
		r.Get("/search", s.handleSearch)
	})

	return r
}

//
// JSON helpers
//

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, kind, msg string) {
	writeJSON(w, code, map[string]string{"error": kind, "message": msg})
}

// internal/resolver/resolver.go
//
// Slug → merged site view-model resolution.
//
// Context
// -------
// Every site-scoped request maps its slug to a fully merged view-model: the
// active site row, a bounded navigation link set, and footer branding merged
// from per-site settings, global settings, and literal fallbacks.  The two
// reads behind it (site row and global settings) are independent, so they
// run concurrently under one errgroup; either failure cancels the other and
// aborts the resolution.
//
// "Site does not exist" and "could not check" are different outcomes on
// purpose: ErrNotFound renders a 404, ErrResolutionFailed is an
// infrastructure failure that monitoring must see separately.
//
// Notes
// -----
// • The resolver never writes the site cookie; switching the remembered
//   site is a caller decision.
// • Oxford commas, two spaces after periods.

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/yanizio/warta/internal/metrics"
	"github.com/yanizio/warta/internal/site"
)

// Navigation shows at most the first five categories, in stored order,
// between the fixed home and search links.
const maxNavCategories = 5

var (
	// ErrNotFound means no active site matches the slug.
	ErrNotFound = errors.New("site not found")
	// ErrResolutionFailed wraps any data-access failure during resolution.
	ErrResolutionFailed = errors.New("site resolution failed")
)

// Repo is the data-access contract the resolver needs.  Both methods return
// (nil, nil) for "no row" and reserve errors for real failures.
type Repo interface {
	ActiveBySlug(ctx context.Context, slug string) (*site.Record, error)
	GlobalSettings(ctx context.Context) (*site.Global, error)
}

//
// View-model
//

// NavLink is one entry of the site navigation bar.
type NavLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Footer is the merged footer branding block.  Empty strings mean absent.
type Footer struct {
	About     string `json:"about"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Context is the per-request resolution result handed to rendering and
// listing code.  It is never shared across requests.
type Context struct {
	Site     *site.Record
	Nav      []NavLink
	Footer   Footer
	LogoPath string // "" when neither site nor global settings carry a logo
}

//
// Resolver
//

// Resolver turns slugs into Contexts.  Safe for concurrent use.
type Resolver struct {
	repo Repo
}

// New returns a Resolver backed by repo.
func New(repo Repo) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve fetches the active site and the global settings concurrently,
// then builds the merged view-model.  Returns ErrNotFound when no active
// site matches, or an error wrapping ErrResolutionFailed when either read
// fails.
func (r *Resolver) Resolve(ctx context.Context, slug string) (*Context, error) {
	var (
		rec  *site.Record
		glob *site.Global
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if rec, err = r.repo.ActiveBySlug(gctx, slug); err != nil {
			return fmt.Errorf("%w: site lookup: %v", ErrResolutionFailed, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if glob, err = r.repo.GlobalSettings(gctx); err != nil {
			return fmt.Errorf("%w: global settings: %v", ErrResolutionFailed, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.SiteResolveErrorsTotal.Inc()
		return nil, err
	}

	if rec == nil {
		metrics.SiteResolveNotFoundTotal.Inc()
		return nil, ErrNotFound
	}

	metrics.SiteResolveTotal.Inc()
	return &Context{
		Site:     rec,
		Nav:      buildNav(rec),
		Footer:   mergeFooter(rec, glob),
		LogoPath: mergeLogo(rec, glob),
	}, nil
}

//
// Merge helpers
//

// buildNav emits home, the first five categories in stored order, and
// search — in that fixed order, never more than seven links.
func buildNav(rec *site.Record) []NavLink {
	base := "/site/" + rec.Slug

	nav := make([]NavLink, 0, maxNavCategories+2)
	nav = append(nav, NavLink{Label: "Beranda", URL: base})
	for i, c := range rec.Categories {
		if i == maxNavCategories {
			break
		}
		nav = append(nav, NavLink{
			Label: c.Name,
			URL:   base + "?category=" + url.QueryEscape(c.Slug),
		})
	}
	nav = append(nav, NavLink{Label: "Cari", URL: base + "/search"})
	return nav
}

// mergeFooter applies field-by-field precedence: site settings, then global
// settings, then a literal fallback.  Social links have no fallback; absent
// stays absent.
func mergeFooter(rec *site.Record, glob *site.Global) Footer {
	f := Footer{
		About: fmt.Sprintf("Informasi terbaru dari %s", rec.Name),
	}
	if glob != nil && glob.About.Valid && glob.About.String != "" {
		f.About = glob.About.String
	}
	if st := rec.Settings; st != nil {
		if st.About.Valid && st.About.String != "" {
			f.About = st.About.String
		}
		if st.Facebook.Valid {
			f.Facebook = st.Facebook.String
		}
		if st.Instagram.Valid {
			f.Instagram = st.Instagram.String
		}
		if st.Twitter.Valid {
			f.Twitter = st.Twitter.String
		}
	}
	return f
}

// mergeLogo prefers the site logo, then the global fallback, then none.
func mergeLogo(rec *site.Record, glob *site.Global) string {
	if rec.LogoPath.Valid && rec.LogoPath.String != "" {
		return rec.LogoPath.String
	}
	if glob != nil && glob.LogoPath.Valid && glob.LogoPath.String != "" {
		return glob.LogoPath.String
	}
	return ""
}

// internal/redirect/redirect.go
//
// Legacy-path redirect table and middleware.
//
// Context
// -------
// Before multi-tenancy, article and category URLs carried no site slug.
// Those shapes still circulate in bookmarks and search indexes, so the edge
// rewrites them onto the configured default site with permanent redirects.
// The table is static and ordered; matching is first-match-wins, and a path
// already under /site/ is never touched.
//
// Workflow
// --------
//   1. main constructs the table via redirect.NewTable(DefaultRules(slug)).
//   2. web.Routes wires redirect.Middleware(table) first in the chain.
//   3. Middleware answers 301 on a table hit; otherwise falls through.
//
// Notes
// -----
// • Patterns support one “*” capturing a single path segment, substituted
//   positionally into the target.
// • Oxford commas, two spaces after periods.
// • Max line length 100 columns.

package redirect

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/warta/internal/metrics"
)

// scopedPrefix marks paths that already carry a site slug; those are never
// rewritten.
const scopedPrefix = "/site/"

// Rule maps one legacy pattern onto a target pattern.  A single “*” in the
// pattern captures exactly one path segment and replaces the “*” in the
// target.
type Rule struct {
	Pattern   string
	Target    string
	Permanent bool
}

// DefaultRules returns the stock legacy table scoped to defaultSlug.  Order
// matters: evaluation is first-match-wins.
func DefaultRules(defaultSlug string) []Rule {
	base := scopedPrefix + defaultSlug
	return []Rule{
		{Pattern: "/article/*", Target: base + "/*", Permanent: true},
		{Pattern: "/articles/*", Target: base + "/*", Permanent: true},
		{Pattern: "/category/*", Target: base + "?category=*", Permanent: true},
		{Pattern: "/search", Target: base + "/search", Permanent: true},
	}
}

// Table holds an ordered rule list.  Zero value matches nothing; construct
// with NewTable.
type Table struct {
	rules []Rule
}

// NewTable returns a Table over rules.
func NewTable(rules []Rule) *Table {
	return &Table{rules: rules}
}

// Rewrite returns the target for path, whether the redirect is permanent,
// and whether any rule matched.  Site-scoped paths never match.
func (t *Table) Rewrite(path string) (target string, permanent, ok bool) {
	if path == "/site" || strings.HasPrefix(path, scopedPrefix) {
		return "", false, false
	}
	for _, rule := range t.rules {
		if capture, hit := match(rule.Pattern, path); hit {
			return strings.Replace(rule.Target, "*", capture, 1), rule.Permanent, true
		}
	}
	return "", false, false
}

// match tests path against pattern.  Without a “*” the comparison is exact;
// with one, the wildcard must cover exactly one non-empty segment.
func match(pattern, path string) (capture string, ok bool) {
	star := strings.IndexByte(pattern, '*')
	if star == -1 {
		return "", pattern == path
	}

	prefix, suffix := pattern[:star], pattern[star+1:]
	if len(path) <= len(prefix)+len(suffix) {
		return "", false
	}
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return "", false
	}

	capture = path[len(prefix) : len(path)-len(suffix)]
	if capture == "" || strings.ContainsRune(capture, '/') {
		return "", false
	}
	return capture, true
}

// Middleware returns a Chi-compatible wrapper that answers redirects for
// legacy paths and passes everything else through untouched.
func Middleware(t *Table) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if target, permanent, ok := t.Rewrite(r.URL.Path); ok {
				code := http.StatusFound
				if permanent {
					code = http.StatusMovedPermanently
				}
				metrics.LegacyRedirectTotal.Inc()
				zap.L().Debug("legacy redirect",
					zap.String("from", r.URL.Path),
					zap.String("to", target))
				http.Redirect(w, r, target, code)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

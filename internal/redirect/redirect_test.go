// internal/redirect/redirect_test.go
//
// Unit-tests for the legacy redirect table and middleware.
//
// Context
// -------
// The middleware must rewrite legacy article/category/search shapes onto the
// default site with a 301, leave site-scoped paths alone, and fall through
// for anything unmatched.
//
// Run: go test ./internal/redirect -v

package redirect

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func defaultTable() *Table {
	return NewTable(DefaultRules("sja-utama"))
}

func TestRewrite_LegacyShapes(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/article/foo", "/site/sja-utama/foo"},
		{"/articles/banjir-2026", "/site/sja-utama/banjir-2026"},
		{"/category/berita", "/site/sja-utama?category=berita"},
		{"/search", "/site/sja-utama/search"},
	}
	tbl := defaultTable()
	for _, c := range cases {
		target, permanent, ok := tbl.Rewrite(c.path)
		if !ok {
			t.Errorf("%s: no match", c.path)
			continue
		}
		if target != c.want {
			t.Errorf("%s: target = %q, want %q", c.path, target, c.want)
		}
		if !permanent {
			t.Errorf("%s: redirect not permanent", c.path)
		}
	}
}

func TestRewrite_ScopedPathsUntouched(t *testing.T) {
	tbl := defaultTable()
	for _, path := range []string{
		"/site/sja-utama",
		"/site/sja-utama/search",
		"/site/other/article/foo",
		"/site",
	} {
		if _, _, ok := tbl.Rewrite(path); ok {
			t.Errorf("%s: scoped path was rewritten", path)
		}
	}
}

func TestRewrite_WildcardIsOneSegment(t *testing.T) {
	tbl := defaultTable()
	for _, path := range []string{
		"/article/foo/bar", // two segments
		"/article/",        // empty capture
		"/article",         // no capture at all
	} {
		if _, _, ok := tbl.Rewrite(path); ok {
			t.Errorf("%s: matched, want miss", path)
		}
	}
}

func TestRewrite_FirstMatchWins(t *testing.T) {
	tbl := NewTable([]Rule{
		{Pattern: "/article/*", Target: "/first/*", Permanent: true},
		{Pattern: "/article/*", Target: "/second/*", Permanent: true},
	})
	target, _, ok := tbl.Rewrite("/article/x")
	if !ok || target != "/first/x" {
		t.Fatalf("got %q/%v, want /first/x", target, ok)
	}
}

func TestMiddleware_RedirectAndFallThrough(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	h := Middleware(defaultTable())(next)

	req := httptest.NewRequest(http.MethodGet, "/article/foo", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/site/sja-utama/foo" {
		t.Fatalf("Location = %q", loc)
	}
	if called {
		t.Fatal("next handler ran on a redirect")
	}

	req = httptest.NewRequest(http.MethodGet, "/site/sja-utama", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if !called || rr.Code != http.StatusOK {
		t.Fatalf("scoped path did not fall through: called=%v code=%d", called, rr.Code)
	}
}

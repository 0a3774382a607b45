// internal/sitecookie/store_test.go
//
// Unit-tests for the site cookie pair.
//
// Run: go test ./internal/sitecookie -v

package sitecookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// roundTrip replays the cookies a previous response set onto a new request,
// the way a browser would.
func roundTrip(t *testing.T, rr *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
	}
	return req
}

func TestSetThenGet(t *testing.T) {
	store := New(false)
	rr := httptest.NewRecorder()
	store.Set(rr, 42, "sja-utama")

	req := roundTrip(t, rr)
	id, ok := store.Get(req)
	if !ok || id != 42 {
		t.Fatalf("Get = %d/%v, want 42/true", id, ok)
	}
	slug, ok := store.GetSlug(req)
	if !ok || slug != "sja-utama" {
		t.Fatalf("GetSlug = %q/%v, want sja-utama/true", slug, ok)
	}
}

func TestSet_PairAttributes(t *testing.T) {
	store := New(true)
	rr := httptest.NewRecorder()
	store.Set(rr, 7, "kabar-kota")

	cookies := rr.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("got %d cookies, want 2", len(cookies))
	}
	wantAge := int(TTL / time.Second)
	for _, c := range cookies {
		if c.MaxAge != wantAge {
			t.Errorf("%s: MaxAge = %d, want %d", c.Name, c.MaxAge, wantAge)
		}
		if !c.HttpOnly {
			t.Errorf("%s: not HttpOnly", c.Name)
		}
		if c.SameSite != http.SameSiteLaxMode {
			t.Errorf("%s: SameSite = %v, want Lax", c.Name, c.SameSite)
		}
		if !c.Secure {
			t.Errorf("%s: not Secure in production store", c.Name)
		}
	}
}

func TestClear_RemovesBoth(t *testing.T) {
	store := New(false)
	rr := httptest.NewRecorder()
	store.Clear(rr)

	cookies := rr.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("got %d cookies, want 2", len(cookies))
	}
	for _, c := range cookies {
		if c.MaxAge != -1 {
			t.Errorf("%s: MaxAge = %d, want -1", c.Name, c.MaxAge)
		}
	}

	// After the clear round-trips, both lookups must be absent together.
	req := roundTrip(t, rr)
	if _, ok := store.Get(req); ok {
		t.Error("Get returned a value after Clear")
	}
	if _, ok := store.GetSlug(req); ok {
		t.Error("GetSlug returned a value after Clear")
	}
}

func TestGet_GarbageValue(t *testing.T) {
	store := New(false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "warta_site_id", Value: "not-a-number"})

	if _, ok := store.Get(req); ok {
		t.Fatal("Get accepted a non-numeric id")
	}
}

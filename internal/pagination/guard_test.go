// internal/pagination/guard_test.go
//
// Unit-tests for the pagination guard.
//
// Run: go test ./internal/pagination -v

package pagination

import (
	"fmt"
	"math"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	res := Validate("", "")
	if res.Kind != KindOK {
		t.Fatalf("kind = %v, want ok", res.Kind)
	}
	if res.Limit != DefaultLimit || res.Skip != 0 {
		t.Fatalf("got limit=%d skip=%d, want %d/0", res.Limit, res.Skip, DefaultLimit)
	}
}

func TestValidate_ExactSkip(t *testing.T) {
	// For in-range page/limit pairs, skip must be exactly (page-1)*limit.
	cases := []struct{ page, limit int }{
		{1, 1}, {1, 100}, {2, 20}, {7, 13}, {101, 100}, {501, 20},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("p%d_l%d", c.page, c.limit), func(t *testing.T) {
			res := Validate(fmt.Sprint(c.page), fmt.Sprint(c.limit))
			if res.Kind != KindOK {
				t.Fatalf("kind = %v, want ok", res.Kind)
			}
			if want := (c.page - 1) * c.limit; res.Skip != want {
				t.Fatalf("skip = %d, want %d", res.Skip, want)
			}
			if res.Message != "" {
				t.Fatalf("unexpected advisory %q", res.Message)
			}
		})
	}
}

func TestValidate_ClampsLimit(t *testing.T) {
	res := Validate("1", "500")
	if res.Kind != KindClamped {
		t.Fatalf("kind = %v, want clamped", res.Kind)
	}
	if res.Limit != MaxLimit || res.Skip != 0 {
		t.Fatalf("got limit=%d skip=%d, want %d/0", res.Limit, res.Skip, MaxLimit)
	}
	if res.Message == "" {
		t.Fatal("expected a clamp advisory")
	}
}

func TestValidate_InvalidLimit(t *testing.T) {
	for _, bad := range []string{"0", "-3", "abc", "20.5"} {
		res := Validate("1", bad)
		if res.Kind != KindInvalidParam || res.Field != "limit" {
			t.Fatalf("limit=%q: kind=%v field=%q, want invalid_param/limit", bad, res.Kind, res.Field)
		}
		if res.Limit != DefaultLimit || res.Skip != 0 {
			t.Fatalf("limit=%q: got %d/%d, want safe defaults", bad, res.Limit, res.Skip)
		}
	}
}

func TestValidate_InvalidPage(t *testing.T) {
	res := Validate("-1", "20")
	if res.Kind != KindInvalidParam || res.Field != "page" {
		t.Fatalf("kind=%v field=%q, want invalid_param/page", res.Kind, res.Field)
	}
	if res.Limit != 20 || res.Skip != 0 {
		t.Fatalf("got limit=%d skip=%d, want 20/0", res.Limit, res.Skip)
	}
}

func TestValidate_OffsetCeiling(t *testing.T) {
	// page 600 × limit 20 → skip 11980, beyond the 10000 ceiling.
	res := Validate("600", "20")
	if res.Kind != KindOffsetTooLarge {
		t.Fatalf("kind = %v, want offset_too_large", res.Kind)
	}
	if res.Skip != 0 {
		t.Fatalf("skip = %d, want reset to 0", res.Skip)
	}
	if res.MaxPage != 501 {
		t.Fatalf("max page = %d, want 501", res.MaxPage)
	}
}

func TestValidate_HugePageCannotWrap(t *testing.T) {
	// Pages large enough that (page-1)*limit wraps the native int must be
	// rejected up front: a wrapped skip is negative (or exactly zero), so a
	// check on the product alone would wave the request through as in-range.
	cases := []struct {
		page, limit string
		maxPage     int
	}{
		{"92233720368547760", "100", 101},    // product wraps negative
		{"4611686018427387905", "4", 2501},   // product wraps to exactly 0
		{fmt.Sprint(math.MaxInt), "20", 501}, // extreme but parseable page
	}
	for _, c := range cases {
		t.Run("p"+c.page+"_l"+c.limit, func(t *testing.T) {
			res := Validate(c.page, c.limit)
			if res.Kind != KindOffsetTooLarge {
				t.Fatalf("kind = %v, want offset_too_large", res.Kind)
			}
			if res.Skip != 0 {
				t.Fatalf("skip = %d, want reset to 0", res.Skip)
			}
			if res.MaxPage != c.maxPage {
				t.Fatalf("max page = %d, want %d", res.MaxPage, c.maxPage)
			}
		})
	}
}

func TestValidate_CeilingUsesEffectiveLimit(t *testing.T) {
	// A clamped limit must feed the offset check: page 200 × clamped 100 =
	// 19900 > 10000, and the reachable range is computed from 100, not 500.
	res := Validate("200", "500")
	if res.Kind != KindOffsetTooLarge {
		t.Fatalf("kind = %v, want offset_too_large", res.Kind)
	}
	if res.MaxPage != 101 {
		t.Fatalf("max page = %d, want 101", res.MaxPage)
	}
}

func TestMeta_Midrange(t *testing.T) {
	m := Meta(5, 20, 1000)
	if m.TotalPages != 50 || m.MaxPage != 50 {
		t.Fatalf("totalPages=%d maxPage=%d, want 50/50", m.TotalPages, m.MaxPage)
	}
	if !m.HasNext || !m.HasPrev {
		t.Fatalf("hasNext=%v hasPrev=%v, want true/true", m.HasNext, m.HasPrev)
	}
}

func TestMeta_CeilingWins(t *testing.T) {
	// A million rows at limit 1: the ceiling, not the total, bounds MaxPage.
	m := Meta(1, 1, 1000000)
	if m.TotalPages != 1000000 {
		t.Fatalf("totalPages = %d, want 1000000", m.TotalPages)
	}
	if m.MaxPage != MaxOffset {
		t.Fatalf("maxPage = %d, want %d", m.MaxPage, MaxOffset)
	}
	if m.HasPrev {
		t.Fatal("page 1 must not report hasPrev")
	}
}

func TestMeta_LastPage(t *testing.T) {
	m := Meta(50, 20, 1000)
	if m.HasNext {
		t.Fatal("final page must not report hasNext")
	}
	if !m.HasPrev {
		t.Fatal("final page must report hasPrev")
	}
}

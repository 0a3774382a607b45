// internal/pagination/guard.go
//
// Pagination guard: bounded, validated page/limit handling.
//
// Context
// -------
// Offset pagination over large announcement tables degrades linearly with
// the offset, so an attacker can burn query time by asking for page ten
// million.  The guard caps the per-page size and the absolute offset, and
// turns every bad input into a safe effective value plus an advisory, so
// listing handlers never abort on pagination alone.
//
// Outcomes are tagged with an explicit Kind instead of being inferred from
// which fields happen to be set.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
// • Lines ≤ 100 columns.

package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// Fixed bounds.  MaxOffset is the real defense: whatever the caller sends,
// the database never scans past this many rows.
const (
	DefaultLimit = 20
	MaxLimit     = 100
	MaxOffset    = 10000
)

//
// Outcome kinds
//

// Kind tags a validation outcome.
type Kind int

const (
	// KindOK means both parameters parsed cleanly and the offset is in range.
	KindOK Kind = iota
	// KindClamped means the limit exceeded MaxLimit and was reduced; the
	// request still proceeds with the clamped value.
	KindClamped
	// KindInvalidParam means page or limit failed to parse; the named field
	// fell back to its default.
	KindInvalidParam
	// KindOffsetTooLarge means the computed offset passed MaxOffset; the
	// request should be rejected and MaxPage reported as remediation.
	KindOffsetTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindClamped:
		return "clamped"
	case KindInvalidParam:
		return "invalid_param"
	case KindOffsetTooLarge:
		return "offset_too_large"
	default:
		return "unknown"
	}
}

//
// Validation
//

// Result carries the effective limit/skip pair plus the outcome tag.  Limit
// and Skip are always safe to hand to a query, whatever Kind says.
type Result struct {
	Limit   int
	Skip    int
	Kind    Kind
	Field   string // offending field for KindInvalidParam ("page" or "limit")
	Message string // human-readable advisory; empty for KindOK
	MaxPage int    // last reachable page for KindOffsetTooLarge
}

// Validate applies the guard rules, in order, to the raw query values.
// Absent values are passed as "".  It never returns an error: invalid input
// degrades to the defaults with an advisory, and only KindOffsetTooLarge
// signals that the specific page is unreachable.
func Validate(page, limit string) Result {
	effLimit := DefaultLimit
	if s := strings.TrimSpace(limit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Result{
				Limit:   DefaultLimit,
				Skip:    0,
				Kind:    KindInvalidParam,
				Field:   "limit",
				Message: fmt.Sprintf("limit must be a positive integer; using %d", DefaultLimit),
			}
		}
		effLimit = n
	}

	clamped := false
	if effLimit > MaxLimit {
		effLimit = MaxLimit
		clamped = true
	}

	effPage := 1
	if s := strings.TrimSpace(page); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Result{
				Limit:   effLimit,
				Skip:    0,
				Kind:    KindInvalidParam,
				Field:   "page",
				Message: "page must be a positive integer; using 1",
			}
		}
		effPage = n
	}

	// Bound the page before multiplying.  (effPage-1)*effLimit wraps for
	// huge but parseable pages, and a wrapped skip would sneak past a
	// post-hoc range check as negative or zero.  effPage-1 > MaxOffset/effLimit
	// is equivalent to (effPage-1)*effLimit > MaxOffset for positive values
	// and cannot overflow.
	if effPage-1 > MaxOffset/effLimit {
		last := MaxOffset/effLimit + 1
		return Result{
			Limit:   effLimit,
			Skip:    0,
			Kind:    KindOffsetTooLarge,
			MaxPage: last,
			Message: fmt.Sprintf("page %d is out of range; the last reachable page is %d", effPage, last),
		}
	}

	res := Result{Limit: effLimit, Skip: (effPage - 1) * effLimit}
	if clamped {
		res.Kind = KindClamped
		res.Message = fmt.Sprintf("limit capped at %d", MaxLimit)
	}
	return res
}

//
// Listing metadata
//

// PageMeta describes one page of results for UI consumption.  MaxPage folds
// the offset ceiling into the page count so "next" affordances never point
// at a page Validate would reject.
type PageMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	MaxPage    int  `json:"maxPage"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Meta derives page metadata from a validated page/limit pair and the total
// row count reported by the store.
func Meta(page, limit, total int) PageMeta {
	if limit < 1 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := (total + limit - 1) / limit
	reachable := (MaxOffset + limit - 1) / limit
	maxPage := totalPages
	if reachable < maxPage {
		maxPage = reachable
	}

	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		MaxPage:    maxPage,
		HasNext:    page < maxPage,
		HasPrev:    page > 1,
	}
}

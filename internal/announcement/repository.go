// internal/announcement/repository.go
//
// Read-side queries for announcement listings.
//
// Context
// -------
// Listings are the one query path that takes user-controlled pagination, so
// every call site runs its limit/skip through the pagination guard first.
// The repository itself stays dumb: parameterised SELECTs, stored-order
// sorting, and a matching COUNT for page metadata.
//
// Notes
// -----
//   - Category filtering joins on the category slug, not its id, because
//     that is what the URL carries.
//   - Oxford commas, two spaces after periods.

package announcement

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Record mirrors one row in the `announcement` table.
type Record struct {
	ID           uint64    `db:"id" json:"id"`
	SiteID       uint64    `db:"site_id" json:"-"`
	CategorySlug string    `db:"category_slug" json:"category,omitempty"`
	Title        string    `db:"title" json:"title"`
	Slug         string    `db:"slug" json:"slug"`
	Summary      string    `db:"summary" json:"summary"`
	PublishedAt  time.Time `db:"published_at" json:"publishedAt"`
}

// Repository wraps the portal database for announcement reads.
type Repository struct {
	db *sqlx.DB
}

// NewRepository returns a Repository bound to db.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// List returns one page of published announcements for a site, newest
// first, optionally filtered by category slug.  limit and skip must come
// from the pagination guard.
func (r *Repository) List(ctx context.Context, siteID uint64, categorySlug string,
	limit, skip int) ([]Record, error) {

	rows := make([]Record, 0, limit)

	if categorySlug == "" {
		const q = `
            SELECT a.id, a.site_id, '' AS category_slug, a.title, a.slug,
                   a.summary, a.published_at
            FROM   announcement a
            WHERE  a.site_id = ?
              AND  a.published_at <= NOW()
            ORDER  BY a.published_at DESC
            LIMIT  ? OFFSET ?`
		if err := r.db.SelectContext(ctx, &rows, q, siteID, limit, skip); err != nil {
			return nil, err
		}
		return rows, nil
	}

	const q = `
        SELECT a.id, a.site_id, c.slug AS category_slug, a.title, a.slug,
               a.summary, a.published_at
        FROM   announcement a
        JOIN   site_category c ON c.id = a.category_id
        WHERE  a.site_id = ?
          AND  c.slug = ?
          AND  a.published_at <= NOW()
        ORDER  BY a.published_at DESC
        LIMIT  ? OFFSET ?`
	if err := r.db.SelectContext(ctx, &rows, q, siteID, categorySlug, limit, skip); err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the total published announcements behind a List call with
// the same filters, for page metadata.
func (r *Repository) Count(ctx context.Context, siteID uint64, categorySlug string) (int, error) {
	var n int
	if categorySlug == "" {
		const q = `
            SELECT COUNT(*)
            FROM   announcement a
            WHERE  a.site_id = ?
              AND  a.published_at <= NOW()`
		if err := r.db.GetContext(ctx, &n, q, siteID); err != nil {
			return 0, err
		}
		return n, nil
	}

	const q = `
        SELECT COUNT(*)
        FROM   announcement a
        JOIN   site_category c ON c.id = a.category_id
        WHERE  a.site_id = ?
          AND  c.slug = ?
          AND  a.published_at <= NOW()`
	if err := r.db.GetContext(ctx, &n, q, siteID, categorySlug); err != nil {
		return 0, err
	}
	return n, nil
}

// Search returns one page of announcements whose title matches q, newest
// first.  The query is matched as a simple substring; full-text search is
// out of scope.
func (r *Repository) Search(ctx context.Context, siteID uint64, q string,
	limit, skip int) ([]Record, error) {

	rows := make([]Record, 0, limit)
	const sq = `
        SELECT a.id, a.site_id, '' AS category_slug, a.title, a.slug,
               a.summary, a.published_at
        FROM   announcement a
        WHERE  a.site_id = ?
          AND  a.title LIKE CONCAT('%', ?, '%')
          AND  a.published_at <= NOW()
        ORDER  BY a.published_at DESC
        LIMIT  ? OFFSET ?`
	if err := r.db.SelectContext(ctx, &rows, sq, siteID, q, limit, skip); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountSearch mirrors Search for page metadata.
func (r *Repository) CountSearch(ctx context.Context, siteID uint64, q string) (int, error) {
	var n int
	const sq = `
        SELECT COUNT(*)
        FROM   announcement a
        WHERE  a.site_id = ?
          AND  a.title LIKE CONCAT('%', ?, '%')
          AND  a.published_at <= NOW()`
	if err := r.db.GetContext(ctx, &n, sq, siteID, q); err != nil {
		return 0, err
	}
	return n, nil
}

// internal/site/repository.go
//
// Read-side queries for site resolution.
//
// Context
// -------
// The resolver needs exactly two reads: the active site matching a slug
// (with its settings and ordered categories), and the singleton global
// settings row.  Both distinguish "no row" from "query failed" — the caller
// maps the former to a 404 and the latter to an infrastructure error, and
// must never conflate the two.
//
// Workflow
// --------
//  1. Callers supply a *sqlx.DB connected to the portal database.
//  2. ActiveBySlug runs three parameterised SELECTs inside one call.
//  3. Rows scan into the structs in model.go.
//  4. sql.ErrNoRows on the site row becomes a nil Record, not an error.
//
// Notes
// -----
//   - Oxford commas, two spaces after periods.

package site

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Repository wraps the portal database for read-only site lookups.
type Repository struct {
	db *sqlx.DB
}

// NewRepository returns a Repository bound to db.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// ActiveBySlug fetches the active site matching slug, including its optional
// settings row and categories in stored order.  A missing or inactive site
// returns (nil, nil); only real query failures return an error.
func (r *Repository) ActiveBySlug(ctx context.Context, slug string) (*Record, error) {
	const siteQ = `
        SELECT id, slug, name, is_active, brand_color, logo_path,
               created_at, updated_at
        FROM   site
        WHERE  slug = ?
          AND  is_active = 1
        LIMIT  1`

	var rec Record
	if err := r.db.GetContext(ctx, &rec, siteQ, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	const settingsQ = `
        SELECT site_id, about, facebook, instagram, twitter
        FROM   site_settings
        WHERE  site_id = ?
        LIMIT  1`

	var st Settings
	switch err := r.db.GetContext(ctx, &st, settingsQ, rec.ID); {
	case err == nil:
		rec.Settings = &st
	case errors.Is(err, sql.ErrNoRows):
		// Settings row is optional.
	default:
		return nil, err
	}

	const catQ = `
        SELECT id, site_id, name, slug, sort_order
        FROM   site_category
        WHERE  site_id = ?
        ORDER  BY sort_order ASC`

	if err := r.db.SelectContext(ctx, &rec.Categories, catQ, rec.ID); err != nil {
		return nil, err
	}

	return &rec, nil
}

// GlobalSettings fetches the singleton global_settings row.  Absence is
// valid and returns (nil, nil).
func (r *Repository) GlobalSettings(ctx context.Context) (*Global, error) {
	const q = `
        SELECT id, logo_path, about
        FROM   global_settings
        LIMIT  1`

	var g Global
	if err := r.db.GetContext(ctx, &g, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

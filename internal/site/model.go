// internal/site/model.go
//
// Row types for the `site`, `site_settings`, `site_category`, and
// `global_settings` tables.
//
// Context
// -------
// A Record is one published portal.  Resolution only ever sees rows with
// `is_active = 1`; deactivation removes a site from the resolvable set
// without destroying its history, so there is no delete path here.
//
// Notes
// -----
//   - Column list matches the fields; update both together.
//   - Oxford commas, two spaces after periods.

package site

import (
	"database/sql"
	"time"
)

// Record mirrors one row in the `site` table, enriched by the repository
// with its settings row and ordered categories.
type Record struct {
	ID         uint64         `db:"id"`
	Slug       string         `db:"slug"`
	Name       string         `db:"name"`
	Active     bool           `db:"is_active"`
	BrandColor string         `db:"brand_color"`
	LogoPath   sql.NullString `db:"logo_path"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`

	// Populated by Repository.ActiveBySlug; nil/empty when absent.
	Settings   *Settings  `db:"-"`
	Categories []Category `db:"-"`
}

// Category is one navigation category of a site.  Order is the stored sort
// position; the repository returns categories already sorted by it.
type Category struct {
	ID     uint64 `db:"id"`
	SiteID uint64 `db:"site_id"`
	Name   string `db:"name"`
	Slug   string `db:"slug"`
	Order  int    `db:"sort_order"`
}

// Settings is the optional per-site settings row (about text, social links).
type Settings struct {
	SiteID    uint64         `db:"site_id"`
	About     sql.NullString `db:"about"`
	Facebook  sql.NullString `db:"facebook"`
	Instagram sql.NullString `db:"instagram"`
	Twitter   sql.NullString `db:"twitter"`
}

// Global is the at-most-one-row `global_settings` record holding
// deployment-wide fallbacks.  Absence is valid; every field is optional.
type Global struct {
	ID       uint64         `db:"id"`
	LogoPath sql.NullString `db:"logo_path"`
	About    sql.NullString `db:"about"`
}

// internal/site/repository_test.go
//
// Unit-tests for site.Repository using sqlmock.
//
// Run: go test ./internal/site -v

package site

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func siteColumns() []string {
	return []string{"id", "slug", "name", "is_active", "brand_color", "logo_path",
		"created_at", "updated_at"}
}

func TestActiveBySlug_Full(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM   site")).
		WithArgs("sja-utama").
		WillReturnRows(sqlmock.NewRows(siteColumns()).
			AddRow(1, "sja-utama", "SJA Utama", true, "#aa0000", "logos/sja.png", now, now))

	mock.ExpectQuery(regexp.QuoteMeta("FROM   site_settings")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"site_id", "about", "facebook", "instagram", "twitter"}).
			AddRow(1, "Portal resmi.", "sja.fb", nil, nil))

	mock.ExpectQuery(regexp.QuoteMeta("FROM   site_category")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_id", "name", "slug", "sort_order"}).
			AddRow(10, 1, "Berita", "berita", 1).
			AddRow(11, 1, "Agenda", "agenda", 2))

	rec, err := repo.ActiveBySlug(context.Background(), "sja-utama")
	if err != nil {
		t.Fatalf("ActiveBySlug error: %v", err)
	}
	if rec == nil || rec.Slug != "sja-utama" {
		t.Fatalf("unexpected record: %#v", rec)
	}
	if rec.Settings == nil || rec.Settings.About.String != "Portal resmi." {
		t.Fatalf("settings not attached: %#v", rec.Settings)
	}
	if len(rec.Categories) != 2 || rec.Categories[0].Slug != "berita" {
		t.Fatalf("categories wrong: %#v", rec.Categories)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestActiveBySlug_NoRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM   site")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	rec, err := repo.ActiveBySlug(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("no-row lookup must not error, got: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record, got %#v", rec)
	}
}

func TestActiveBySlug_MissingSettingsIsFine(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM   site")).
		WithArgs("kabar-kota").
		WillReturnRows(sqlmock.NewRows(siteColumns()).
			AddRow(2, "kabar-kota", "Kabar Kota", true, "#003366", nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM   site_settings")).
		WithArgs(uint64(2)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("FROM   site_category")).
		WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_id", "name", "slug", "sort_order"}))

	rec, err := repo.ActiveBySlug(context.Background(), "kabar-kota")
	if err != nil {
		t.Fatalf("ActiveBySlug error: %v", err)
	}
	if rec.Settings != nil {
		t.Fatalf("expected nil settings, got %#v", rec.Settings)
	}
}

func TestGlobalSettings_Absent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM   global_settings")).
		WillReturnError(sql.ErrNoRows)

	g, err := repo.GlobalSettings(context.Background())
	if err != nil {
		t.Fatalf("absent global settings must not error, got: %v", err)
	}
	if g != nil {
		t.Fatalf("expected nil, got %#v", g)
	}
}

func TestValidSlug(t *testing.T) {
	good := []string{"sja-utama", "a", "kabar-kota-7"}
	bad := []string{"", "-lead", "trail-", "dou--ble", "Upper", "pa th", "émis"}

	for _, s := range good {
		if !ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = false, want true", s)
		}
	}
	for _, s := range bad {
		if ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = true, want false", s)
		}
	}
}

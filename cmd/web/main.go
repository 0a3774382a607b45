// cmd/web/main.go
//
// Warta – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start rotating JSON logger (tees to console when running in a TTY).
//
//  3. Load layered configuration and resolve Vault references.
//
//  4. Open the portal database and log active-site count.
//
//  5. Optionally open the GeoLite2 database for request enrichment.
//
//  6. Wire repositories → resolver → web routes, then wrap with the
//     HTTPS-enforcement middleware when configured.
//
//  7. Serve with hardened timeouts.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yanizio/warta/internal/announcement"
	"github.com/yanizio/warta/internal/config"
	"github.com/yanizio/warta/internal/database"
	"github.com/yanizio/warta/internal/logger"
	"github.com/yanizio/warta/internal/middleware"
	"github.com/yanizio/warta/internal/redirect"
	"github.com/yanizio/warta/internal/requestinfo"
	"github.com/yanizio/warta/internal/resolver"
	"github.com/yanizio/warta/internal/secrets"
	"github.com/yanizio/warta/internal/server"
	"github.com/yanizio/warta/internal/site"
	"github.com/yanizio/warta/internal/sitecookie"
	"github.com/yanizio/warta/internal/web"
)

const serverEnvPath = "/usr/local/etc/warta/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Configuration and secrets ───────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalf("load config: %v", err)
	}

	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	password := cfg.Database.Password
	if secrets.IsRef(password) {
		cli, err := secrets.New()
		if err != nil {
			logOut.Fatalf("vault client: %v", err)
		}
		if password, err = cli.Resolve(bootCtx, password); err != nil {
			logOut.Fatalf("resolve db password: %v", err)
		}
	}

	//
	// ── 2.  Portal DB connect ───────────────────────────────────────────
	//
	db, err := database.Open(bootCtx, fmt.Sprintf(cfg.Database.DSN, password))
	if err != nil {
		logOut.Fatalf("connect portal DB: %v", err)
	}
	defer db.Close()

	// Log active-site count as an early sanity check.
	var active int
	_ = db.Get(&active, `SELECT COUNT(*) FROM site WHERE is_active = 1`)
	logOut.Infow("portal DB online", "active_sites", active)

	//
	// ── 3.  Optional GeoLite2 enrichment ────────────────────────────────
	//
	if cfg.Geo.DBPath != "" {
		if err := requestinfo.InitGeo(cfg.Geo.DBPath); err != nil {
			logOut.Warnw("geo disabled", "path", cfg.Geo.DBPath, "err", err)
		}
	}

	//
	// ── 4.  Core wiring: repositories → resolver → routes ───────────────
	//
	srv := web.New(
		logOut,
		resolver.New(site.NewRepository(db)),
		sitecookie.New(cfg.Production()),
		announcement.NewRepository(db),
		redirect.NewTable(redirect.DefaultRules(cfg.Site.DefaultSlug)),
		cfg.Site.DefaultSlug,
	)

	handler := srv.Routes()
	if cfg.HTTP.ForceHTTPS {
		handler = middleware.ForceHTTPS(handler)
	}

	//
	// ── 5.  Serve ───────────────────────────────────────────────────────
	//
	httpSrv := server.New(cfg.HTTP.ListenAddr, handler)
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := httpSrv.ListenAndServe(); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
}

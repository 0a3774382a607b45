// internal/config/model.go
//
// Typed configuration model for Warta.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                         – dotenv values,
//   • `conf/global.yaml`                      – primary static file,
//   • `WARTA_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved through
// the secrets client *after* unmarshalling, so only the boot path in cmd/web
// ever talks to Vault.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Database section
//

// Database holds the portal DSN.  Password may be a literal or a
// `vault:mount/path#key` reference resolved at boot; the DSN carries one
// `%s` verb where the password is substituted.
type Database struct {
	DSN      string `koanf:"dsn"      validate:"required"`
	Password string `koanf:"password" validate:"required"`
}

//
// Site section
//

// Site holds tenant-routing knobs.  DefaultSlug is the site that legacy,
// pre-multi-tenancy URLs are rewritten onto.
type Site struct {
	DefaultSlug string `koanf:"default_slug" validate:"required"`
}

//
// Geo section
//

// Geo points at an optional GeoLite2-City database.  Empty disables
// geolocation enrichment.
type Geo struct {
	DBPath string `koanf:"db_path"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or WARTA_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // WARTA_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	Env      string   `koanf:"env"`
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Site     Site     `koanf:"site"`
	Geo      Geo      `koanf:"geo"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}

// Production reports whether cookies and transport should behave as in a
// production-like deployment.
func (c *Config) Production() bool { return c.Env == "production" }

//
//  internal/requestinfo/requestinfo.go
//
//  Lightweight types and helpers that collect per-request metadata
//  (user-agent fingerprint, IP + geolocation, URL, and timestamp).
//  These structs are inert.  They contain no pointers to database
//  handles or large buffers, so they are safe to log or JSON-encode.
//
//  Dependencies
//  • github.com/avct/uasurfer          (UA parsing)
//  • github.com/oschwald/geoip2-golang (MaxMind lookup)
//

package requestinfo

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avct/uasurfer"
	"github.com/oschwald/geoip2-golang"
)

//
//  -----------------------------
//  Struct definitions
//  -----------------------------
//

// UA holds the parsed user-agent properties listing handlers care about,
// bot detection above all.
type UA struct {
	Raw         string // Entire User-Agent header
	Browser     string // "Chrome", "Firefox", "Safari", ...
	Version     string // "124.0.6367"
	OS          string // "MacOSX", "Windows", "Android", ...
	Device      string // "Computer", "Phone", "Tablet", ...
	IsBot       bool   // True when the UA matches a crawler signature
	PrimaryLang string // First tag from Accept-Language ("id", "en", ...)
}

// Geo holds IP-based geolocation hints.  Best-effort: fields stay empty
// when no GeoLite2 database is configured or the IP has no match.
type Geo struct {
	IP         net.IP
	CountryISO string // "ID", "SG", "US", ...
	City       string
}

// RequestInfo is stored in the request context by Enrich.
type RequestInfo struct {
	UA        UA
	Geo       Geo
	URL       *url.URL // Pointer copy, safe to dereference read-only
	Timestamp time.Time
}

//
//  -----------------------------
//  Package-level state
//  -----------------------------
//

// geoReader is an optional MaxMind handle.  It is safe for concurrent
// reads, which is all we ever perform.  nil disables geolocation.
var geoReader *geoip2.Reader

// InitGeo opens the GeoLite2-City database.  Call once from main() when a
// path is configured; a missing database is a startup error the caller can
// choose to tolerate.
func InitGeo(dbPath string) error {
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoReader = r
	return nil
}

//
//  -----------------------------
//  Public helper: FromContext
//  -----------------------------
//

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich, or nil if
// the middleware has not run.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

//
//  -----------------------------
//  Internal helpers
//  -----------------------------
//

// parseUA converts a raw header into our UA struct using uasurfer.
func parseUA(uaHeader, acceptLang string) UA {
	u := uasurfer.Parse(uaHeader)

	return UA{
		Raw:         uaHeader,
		Browser:     strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
		Version:     versionString(u.Browser.Version),
		OS:          strings.TrimPrefix(u.OS.Name.String(), "OS"),
		Device:      strings.TrimPrefix(u.DeviceType.String(), "Device"),
		IsBot:       u.IsBot(),
		PrimaryLang: primaryLang(acceptLang),
	}
}

// versionString builds "major.minor.patch" and removes trailing ".0" runs.
func versionString(v uasurfer.Version) string {
	out := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	for strings.HasSuffix(out, ".0") {
		out = strings.TrimSuffix(out, ".0")
	}
	return out
}

// primaryLang extracts the first language subtag before any ";q=" rule.
func primaryLang(al string) string {
	if al == "" {
		return ""
	}
	tag := strings.TrimSpace(strings.Split(al, ",")[0])
	if i := strings.IndexByte(tag, ';'); i != -1 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}

// lookupGeo returns best-effort Geo data using the optional reader.
func lookupGeo(ip net.IP) Geo {
	if geoReader == nil || ip == nil {
		return Geo{IP: ip}
	}
	rec, err := geoReader.City(ip)
	if err != nil {
		return Geo{IP: ip}
	}
	return Geo{
		IP:         ip,
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
}

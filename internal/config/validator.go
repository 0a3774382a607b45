// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after it
// unmarshals the merged Koanf tree into a `Config` instance.  Any tag
// mismatch or validation error aborts startup, ensuring the binary never
// runs with partial, malformed, or missing configuration.
//
// The built-in rules in use are `required` and `hostname_port`; the default
// site slug additionally gets a custom shape check so legacy redirects can
// never point at a malformed URL.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/yanizio/warta/internal/site"
)

//
// validator instance (package-level singleton)
//

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	_ = val.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return site.ValidSlug(fl.Field().String())
	})
	return val
}

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	if err := v.Struct(c); err != nil {
		return err
	}
	return v.Var(c.Site.DefaultSlug, "slug")
}

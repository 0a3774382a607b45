// internal/secrets/secrets.go
//
// Vault-backed secret resolution for configuration values.
//
// Context
// -------
//   - Config values may carry a `vault:mount/path#key` reference instead of a
//     literal, keeping credentials out of flat files and git history.
//   - Resolution happens once at boot, so this wrapper reads KV-v2 secrets
//     and nothing more; there is no token-renewal loop.
//
// Public workflow
// ---------------
//  1. cli, err := secrets.New()                  // during boot.
//  2. val, err := cli.Resolve(ctx, cfgValue)     // literal passes through.
//
// Environment expectations
// ------------------------
// • VAULT_ADDR   – scheme and host of the Vault server.
// • VAULT_TOKEN  – initial token (falls back to ~/.vault-token).
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	vault "github.com/hashicorp/vault/api"
)

// Prefix marks a config value as a Vault reference.
const Prefix = "vault:"

// IsRef reports whether s is a Vault reference rather than a literal.
func IsRef(s string) bool { return strings.HasPrefix(s, Prefix) }

// Client is a thin read-only wrapper over the Vault API.  Zero value is
// invalid; construct with New.
type Client struct {
	api *vault.Client
}

// New constructs a Vault client from the environment.
func New() (*Client, error) {
	cfg := vault.DefaultConfig()
	if err := cfg.ReadEnvironment(); err != nil {
		return nil, fmt.Errorf("vault env cfg: %w", err)
	}

	apiCli, err := vault.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault api: %w", err)
	}

	if tok := os.Getenv("VAULT_TOKEN"); tok != "" {
		apiCli.SetToken(tok)
	}

	return &Client{api: apiCli}, nil
}

// Resolve returns ref unchanged when it is a literal, or fetches the
// referenced KV-v2 value when it carries the `vault:` prefix.
func (c *Client) Resolve(ctx context.Context, ref string) (string, error) {
	if !IsRef(ref) {
		return ref, nil
	}

	path, key, err := splitRef(strings.TrimPrefix(ref, Prefix))
	if err != nil {
		return "", err
	}

	mount, rel := splitMount(path)
	sec, err := c.api.KVv2(mount).Get(ctx, rel)
	if err != nil {
		return "", fmt.Errorf("vault get %s: %w", path, err)
	}

	raw, ok := sec.Data[key]
	if !ok {
		return "", fmt.Errorf("key %q not found in secret %q", key, path)
	}
	sval, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("value at %s#%s is not a string", path, key)
	}
	return sval, nil
}

//
// helpers
//

// splitRef separates "mount/path#key" into its path and key parts.
func splitRef(ref string) (path, key string, err error) {
	i := strings.LastIndexByte(ref, '#')
	if i <= 0 || i == len(ref)-1 {
		return "", "", errors.New(`vault reference must look like "vault:mount/path#key"`)
	}
	return ref[:i], ref[i+1:], nil
}

func splitMount(p string) (mount, rel string) {
	parts := strings.SplitN(p, "/", 2)
	mount = parts[0]
	if len(parts) == 2 {
		rel = parts[1]
	}
	return
}

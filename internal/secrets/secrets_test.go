// internal/secrets/secrets_test.go
//
// Unit-tests for reference parsing.  Live Vault reads are covered by
// integration environments, not here.

package secrets

import "testing"

func TestIsRef(t *testing.T) {
	if !IsRef("vault:kv/portal#db_password") {
		t.Error("vault reference not recognised")
	}
	if IsRef("hunter2") || IsRef("") {
		t.Error("literal treated as reference")
	}
}

func TestSplitRef(t *testing.T) {
	path, key, err := splitRef("kv/portal/db#password")
	if err != nil {
		t.Fatalf("splitRef error: %v", err)
	}
	if path != "kv/portal/db" || key != "password" {
		t.Fatalf("got %q/%q", path, key)
	}

	for _, bad := range []string{"nokey", "#leading", "trailing#"} {
		if _, _, err := splitRef(bad); err == nil {
			t.Errorf("splitRef(%q) accepted malformed reference", bad)
		}
	}
}

func TestSplitMount(t *testing.T) {
	mount, rel := splitMount("kv/portal/db")
	if mount != "kv" || rel != "portal/db" {
		t.Fatalf("got %q/%q", mount, rel)
	}
	mount, rel = splitMount("kv")
	if mount != "kv" || rel != "" {
		t.Fatalf("got %q/%q", mount, rel)
	}
}

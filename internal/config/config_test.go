package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
api:
  base_url: "https://api.example.test"
  timeout_seconds: 10
author:
  id: "author-1"
  name: "Coach"
timezone: "Europe/Madrid"
statuses:
  add: 1
  update: 3
deepl:
  auth_key: "dl-key"
state:
  dir: "/tmp/everfit-test"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.test" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 10*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout())
	}
	if cfg.Author.ID != "author-1" || cfg.Author.Name != "Coach" {
		t.Errorf("author = %+v", cfg.Author)
	}
	if cfg.Timezone != "Europe/Madrid" {
		t.Errorf("timezone = %q", cfg.Timezone)
	}
	if cfg.DeepL.AuthKey != "dl-key" {
		t.Errorf("deepl auth key = %q", cfg.DeepL.AuthKey)
	}
	if cfg.State.Dir != "/tmp/everfit-test" {
		t.Errorf("state dir = %q", cfg.State.Dir)
	}
}

// TestLoadDefaults verifies a minimal config picks up every default.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, "author:\n  id: a\n  name: b\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://api-prod3.everfit.io" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 30*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout())
	}
	if cfg.Timezone != "America/Los_Angeles" {
		t.Errorf("timezone = %q", cfg.Timezone)
	}
	if cfg.Statuses.Add != 1 || cfg.Statuses.Update != 3 {
		t.Errorf("statuses = %+v", cfg.Statuses)
	}
	if cfg.DeepL.BaseURL != "https://api-free.deepl.com" {
		t.Errorf("deepl base_url = %q", cfg.DeepL.BaseURL)
	}
}

// TestLoadMissingAuthor verifies validation rejects configs without the
// payload author.
func TestLoadMissingAuthor(t *testing.T) {
	if _, err := Load(writeTemp(t, "timezone: UTC\n")); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := Load(writeTemp(t, "author:\n  id: a\n")); err == nil {
		t.Fatal("expected validation error for missing author name")
	}
}

// TestLoadMissingFile verifies a nonexistent path is an error, not an
// implicit empty config.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error")
	}
}

// TestEnvOverrides verifies environment variables beat file values.
func TestEnvOverrides(t *testing.T) {
	t.Setenv("EVERFIT_API_BASE_URL", "https://override.example.test")
	t.Setenv("EVERFIT_AUTHOR_ID", "env-author")
	t.Setenv("EVERFIT_STATUS_UPDATE", "5")
	t.Setenv("EVERFIT_DEEPL_AUTH_KEY", "env-key")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://override.example.test" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.Author.ID != "env-author" {
		t.Errorf("author id = %q", cfg.Author.ID)
	}
	if cfg.Statuses.Update != 5 {
		t.Errorf("status update = %d", cfg.Statuses.Update)
	}
	if cfg.DeepL.AuthKey != "env-key" {
		t.Errorf("deepl auth key = %q", cfg.DeepL.AuthKey)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := load("", envMap(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.HTTP.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.HTTP.Addr())
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `
app: abrigos
log:
  level: debug
  format: json
http:
  port: "9090"
  read_timeout: 2s
client:
  base_url: http://api.local
  cache_ttl: 30s
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := load(path, envMap(map[string]string{
		"PORT":              "7070",
		"SHELTER_API_TOKEN": " tok ",
		"SHELTER_CACHE_TTL": "not-a-duration",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App != "abrigos" || cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("yaml values not applied: %#v", cfg)
	}
	if cfg.HTTP.Port != "7070" {
		t.Fatalf("expected env PORT to win, got %s", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeout != 2*time.Second {
		t.Fatalf("expected read_timeout 2s, got %s", cfg.HTTP.ReadTimeout)
	}
	if cfg.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("expected default write_timeout kept, got %s", cfg.HTTP.WriteTimeout)
	}
	if cfg.Client.Token != "tok" {
		t.Fatalf("expected trimmed token, got %q", cfg.Client.Token)
	}
	if cfg.Client.CacheTTL != 30*time.Second {
		t.Fatalf("invalid env duration must be ignored, got %s", cfg.Client.CacheTTL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := load(filepath.Join(t.TempDir(), "nope.yaml"), envMap(nil)); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestOdinEnabled(t *testing.T) {
	cfg := Default()
	if cfg.OdinEnabled() {
		t.Fatalf("expected odin disabled by default")
	}
	cfg.Odin.BaseURL = "http://odin"
	cfg.Odin.APIKey = "k"
	if !cfg.OdinEnabled() {
		t.Fatalf("expected odin enabled")
	}
}

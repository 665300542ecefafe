package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(envAPIURL, "")
	t.Setenv(envAPIToken, "")
	t.Setenv(envActor, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	// Zero means unset; the caller layers the persisted preference over it.
	if cfg.PageSize != 0 {
		t.Fatalf("PageSize = %d, want 0 (unset)", cfg.PageSize)
	}
	if cfg.APIToken != "" {
		t.Fatalf("APIToken = %q, want empty", cfg.APIToken)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envAPIURL, "")
	t.Setenv(envActor, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  https://api.lifelink.example/api  "
actor = "  nasrin  "
page_size = 25
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://api.lifelink.example/api" {
		t.Fatalf("APIURL = %q, want trimmed url", cfg.APIURL)
	}
	if cfg.Actor != "nasrin" {
		t.Fatalf("Actor = %q, want nasrin", cfg.Actor)
	}
	if cfg.PageSize != 25 {
		t.Fatalf("PageSize = %d, want 25", cfg.PageSize)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = "file.example:1337"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv(envAPIURL, "env.example:1337")
	t.Setenv(envAPIToken, "s3cret")
	t.Setenv(envActor, "ops")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "env.example:1337" {
		t.Fatalf("APIURL = %q, want env value", cfg.APIURL)
	}
	if cfg.APIToken != "s3cret" {
		t.Fatalf("APIToken = %q, want env value", cfg.APIToken)
	}
	if cfg.Actor != "ops" {
		t.Fatalf("Actor = %q, want env value", cfg.Actor)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envAPIURL, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "   "
page_size = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.PageSize != 0 {
		t.Fatalf("PageSize = %d, want 0 (unset)", cfg.PageSize)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

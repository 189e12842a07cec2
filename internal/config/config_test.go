package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/thronedex/internal/thronesapi"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != thronesapi.DefaultBaseURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, thronesapi.DefaultBaseURL)
	}
	if cfg.Locale != defaultLocale {
		t.Fatalf("Locale = %q, want %q", cfg.Locale, defaultLocale)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Fatalf("Timeout = %v, want 10s", cfg.Timeout())
	}
	wantLog, err := ExpandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("ExpandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  http://127.0.0.1:9999  "
locale = " es-ES "
timeout_seconds = 3
log_file = "  ~/logs/thronedex.log  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:9999" {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, "http://127.0.0.1:9999")
	}
	if cfg.Locale != "es-ES" {
		t.Fatalf("Locale = %q, want es-ES", cfg.Locale)
	}
	if cfg.Timeout() != 3*time.Second {
		t.Fatalf("Timeout = %v, want 3s", cfg.Timeout())
	}
	if cfg.LogFile != filepath.Join(home, "logs", "thronedex.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "   "
locale = ""
timeout_seconds = -4
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != thronesapi.DefaultBaseURL || cfg.Locale != defaultLocale || cfg.TimeoutSeconds != defaultTimeoutSeconds {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("THRONEDEX_API_URL", "http://env.example:8080")
	t.Setenv("THRONEDEX_TIMEOUT_SECONDS", "7")
	t.Setenv("THRONEDEX_LOG_FILE", "off")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = "http://file.example"
locale = "fr"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://env.example:8080" {
		t.Fatalf("APIURL = %q, want env override", cfg.APIURL)
	}
	if cfg.Locale != "fr" {
		t.Fatalf("Locale = %q, want file value fr", cfg.Locale)
	}
	if cfg.TimeoutSeconds != 7 {
		t.Fatalf("TimeoutSeconds = %d, want 7", cfg.TimeoutSeconds)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want disabled", cfg.LogFile)
	}
}

func TestLoad_InvalidEnvFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("THRONEDEX_TIMEOUT_SECONDS", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("Load error = %v, want parse env error", err)
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

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}

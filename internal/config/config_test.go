package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/toast"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Gallery.Port != DefaultPort {
		t.Errorf("Gallery.Port = %d, want %d", cfg.Gallery.Port, DefaultPort)
	}
	if cfg.Gallery.Host != DefaultHost {
		t.Errorf("Gallery.Host = %q, want %q", cfg.Gallery.Host, DefaultHost)
	}
	if cfg.Export.Target != DefaultExportDir {
		t.Errorf("Export.Target = %q, want %q", cfg.Export.Target, DefaultExportDir)
	}
	if cfg.Toast.Delay != DefaultToastDelay {
		t.Errorf("Toast.Delay = %q, want %q", cfg.Toast.Delay, DefaultToastDelay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E100") {
		t.Fatalf("missing config error = %v, want E100", err)
	}

	writeConfig(t, tmpDir, `{
  "name": "Acme",
  "gallery": {"port": 8080, "host": "0.0.0.0", "tracing": true},
  "export": {"target": "s3://acme/ui", "region": "eu-west-1"},
  "toast": {"delay": "2s", "limit": 3, "position": "bottom-left"}
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "Acme" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Gallery.Port != 8080 || cfg.Gallery.Host != "0.0.0.0" || !cfg.Gallery.Tracing {
		t.Errorf("Gallery = %+v", cfg.Gallery)
	}
	if cfg.Export.Target != "s3://acme/ui" || cfg.Export.Region != "eu-west-1" {
		t.Errorf("Export = %+v", cfg.Export)
	}
	if cfg.Toast.Limit != 3 || cfg.Toast.Position != "bottom-left" {
		t.Errorf("Toast = %+v", cfg.Toast)
	}
	// Unset fields keep their defaults.
	if cfg.Gallery.CacheSize != DefaultCacheSize {
		t.Errorf("CacheSize = %d, want default", cfg.Gallery.CacheSize)
	}
	if cfg.Path() != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q", cfg.Dir())
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"gallery": {`)

	_, err := LoadFile(path)
	if !errors.HasCode(err, "E101") {
		t.Fatalf("error = %v, want E101", err)
	}
}

func TestLoadFile_ValidationFails(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"gallery": {"port": 70000}, "toast": {"delay": "soon"}}`)

	_, err := LoadFile(path)
	if !errors.HasCode(err, "E102") {
		t.Fatalf("error = %v, want E102", err)
	}
	msg := err.Error()
	for _, want := range []string{"gallery.port", "toast.delay"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %s", msg, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"port zero", func(c *Config) { c.Gallery.Port = 0 }, false},
		{"port too large", func(c *Config) { c.Gallery.Port = 65536 }, false},
		{"empty host", func(c *Config) { c.Gallery.Host = "" }, false},
		{"ip host", func(c *Config) { c.Gallery.Host = "127.0.0.1" }, true},
		{"negative cache", func(c *Config) { c.Gallery.CacheSize = -1 }, false},
		{"bad shutdown", func(c *Config) { c.Gallery.ShutdownTimeout = "1 minute" }, false},
		{"empty target", func(c *Config) { c.Export.Target = "" }, false},
		{"zero delay", func(c *Config) { c.Toast.Delay = "0s" }, true},
		{"negative delay", func(c *Config) { c.Toast.Delay = "-1s" }, false},
		{"unknown position", func(c *Config) { c.Toast.Position = "middle" }, false},
		{"empty origin", func(c *Config) { c.Gallery.AllowedOrigins = []string{""} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.HasCode(err, "E102") {
				t.Errorf("Validate() = %v, want E102", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"VANGOUI_PORT":           "9000",
		"VANGOUI_HOST":           "0.0.0.0",
		"VANGOUI_METRICS":        "false",
		"VANGOUI_EXPORT_TARGET":  "s3://bucket/prefix",
		"VANGOUI_TOAST_LIMIT":    "not-a-number",
		"VANGOUI_TOAST_POSITION": "bottom-center",
	}
	cfg := New()
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	if cfg.Gallery.Port != 9000 {
		t.Errorf("Port = %d", cfg.Gallery.Port)
	}
	if cfg.Gallery.Host != "0.0.0.0" {
		t.Errorf("Host = %q", cfg.Gallery.Host)
	}
	if cfg.Gallery.Metrics {
		t.Error("Metrics should be disabled")
	}
	if cfg.Export.Target != "s3://bucket/prefix" {
		t.Errorf("Target = %q", cfg.Export.Target)
	}
	if cfg.Toast.Limit != DefaultToastLimit {
		t.Errorf("malformed limit should be ignored, got %d", cfg.Toast.Limit)
	}
	if cfg.Toast.Position != "bottom-center" {
		t.Errorf("Position = %q", cfg.Toast.Position)
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "VANGOUI_TOAST_LIMIT"
	prev, had := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})

	dir := t.TempDir()
	writeConfig(t, dir, `{}`)
	if err := os.WriteFile(filepath.Join(dir, EnvFileName), []byte(key+"=9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Toast.Limit != 9 {
		t.Errorf("Toast.Limit = %d, want 9 from .env", cfg.Toast.Limit)
	}
}

func TestLoadEnv_Missing(t *testing.T) {
	if err := LoadEnv(t.TempDir()); err != nil {
		t.Errorf("missing .env should not fail: %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("VANGOUI_PORT", "7007")

	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.Gallery.Port != 7007 {
		t.Errorf("Port = %d, want env override", cfg.Gallery.Port)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
	if cfg.Dir() != "." {
		t.Errorf("Dir() = %q, want .", cfg.Dir())
	}

	bad := t.TempDir()
	writeConfig(t, bad, `nope`)
	if _, err := LoadOrDefault(bad); !errors.HasCode(err, "E101") {
		t.Errorf("broken config should surface E101, got %v", err)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Error("Save without a path should fail")
	}

	cfg.Name = "Saved"
	cfg.Toast.Limit = 2
	path := filepath.Join(tmpDir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("saved file should end with newline")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.Name != "Saved" || loaded.Toast.Limit != 2 {
		t.Errorf("round trip lost values: %+v", loaded)
	}

	loaded.Name = "Again"
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}

func TestAddressAndURL(t *testing.T) {
	cfg := New()
	cfg.Gallery.Host = "0.0.0.0"
	cfg.Gallery.Port = 8080

	if got := cfg.Address(); got != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", got)
	}
	if got := cfg.URL(); got != "http://0.0.0.0:8080" {
		t.Errorf("URL() = %q", got)
	}
}

func TestShutdownTimeout(t *testing.T) {
	cfg := New()
	cfg.Gallery.ShutdownTimeout = "3s"
	if got := cfg.ShutdownTimeout(); got != 3*time.Second {
		t.Errorf("ShutdownTimeout() = %v", got)
	}
	cfg.Gallery.ShutdownTimeout = "bogus"
	if got := cfg.ShutdownTimeout(); got != 10*time.Second {
		t.Errorf("fallback = %v", got)
	}
}

func TestCatalogPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"stories": {"catalog": "stories.yaml"}}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.CatalogPath(); got != filepath.Join(dir, "stories.yaml") {
		t.Errorf("CatalogPath() = %q", got)
	}

	cfg.Stories.Catalog = "/abs/stories.yaml"
	if got := cfg.CatalogPath(); got != "/abs/stories.yaml" {
		t.Errorf("absolute CatalogPath() = %q", got)
	}

	if New().CatalogPath() != "" {
		t.Error("empty catalog should resolve to embedded")
	}
}

func TestToastOptions(t *testing.T) {
	cfg := New()
	cfg.Toast.Delay = "2s"
	cfg.Toast.Position = "bottom-right"

	c := toast.DefaultConfig()
	for _, opt := range cfg.ToastOptions() {
		opt(&c)
	}
	if c.AutoClose || c.AutoCloseDelay != 2*time.Second {
		t.Errorf("AutoClose = %v, delay = %v", c.AutoClose, c.AutoCloseDelay)
	}
	if c.Position != toast.BottomRight {
		t.Errorf("Position = %q", c.Position)
	}

	if got := len(cfg.ToasterOptions()); got != 2 {
		t.Errorf("ToasterOptions() len = %d", got)
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	if Exists(tmpDir) {
		t.Error("Exists should return false for empty directory")
	}
	writeConfig(t, tmpDir, `{}`)
	if !Exists(tmpDir) {
		t.Error("Exists should return true when config exists")
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{}`)

	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot failed: %v", err)
	}

	// t.TempDir may sit behind a symlink on some systems.
	want, _ := filepath.EvalSymlinks(tmpDir)
	got, _ := filepath.EvalSymlinks(root)
	if got != want {
		t.Errorf("FindProjectRoot = %q, want %q", got, want)
	}

	if _, err := FindProjectRoot(t.TempDir()); !errors.HasCode(err, "E100") {
		t.Errorf("no root should give E100, got %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Gallery.Port != DefaultPort || cfg.Gallery.Host != DefaultHost {
		t.Errorf("Gallery defaults not applied: %+v", cfg.Gallery)
	}
	if cfg.Toast.Delay != DefaultToastDelay || cfg.Toast.Position != "top-right" {
		t.Errorf("Toast defaults not applied: %+v", cfg.Toast)
	}
	if cfg.Export.Target != DefaultExportDir {
		t.Errorf("Export default not applied: %q", cfg.Export.Target)
	}
}

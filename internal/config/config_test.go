package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/forge/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Render.Host != HostVDOM {
		t.Errorf("Render.Host = %q, want %q", cfg.Render.Host, HostVDOM)
	}
	if cfg.Preview.Port != DefaultPort || cfg.Preview.Host != DefaultHost {
		t.Errorf("preview = %+v", cfg.Preview)
	}
	if !cfg.HotReloadEnabled() || !cfg.MetricsEnabled() {
		t.Error("hot reload and metrics should default to enabled")
	}
	if cfg.PreviewURL() != "http://localhost:4000" {
		t.Errorf("PreviewURL() = %q", cfg.PreviewURL())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
	if cfg.Render.Host != HostVDOM {
		t.Errorf("expected defaults, got %+v", cfg.Render)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{
		"render": {"host": "html", "pretty": true},
		"preview": {"port": 8080, "hotReload": false},
		"publish": {"bucket": "site", "prefix": "pages/"},
		"log": {"level": "debug", "format": "json"}
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if cfg.Render.Host != HostHTML || !cfg.Render.Pretty || cfg.Render.Indent != "  " {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Preview.Port != 8080 || cfg.Preview.Host != DefaultHost {
		t.Errorf("preview = %+v", cfg.Preview)
	}
	if cfg.HotReloadEnabled() {
		t.Error("hot reload should be disabled")
	}
	if !cfg.MetricsEnabled() {
		t.Error("metrics should stay enabled")
	}
	if cfg.Publish.Bucket != "site" || cfg.Publish.CacheControl != "no-cache" {
		t.Errorf("publish = %+v", cfg.Publish)
	}
	level, err := cfg.LogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, %v", level, err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{"invalid json", `{"render": `, "E040"},
		{"bad port", `{"preview": {"port": 70000}}`, "E041"},
		{"bad host", `{"render": {"host": "dom"}}`, "E041"},
		{"bad level", `{"log": {"level": "loud"}}`, "E041"},
		{"bad format", `{"log": {"format": "xml"}}`, "E041"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(dir)
			var fe *errors.ForgeError
			if !stderrors.As(err, &fe) {
				t.Fatalf("err = %v, want ForgeError", err)
			}
			if fe.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", fe.Code, tt.wantCode)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot() = %q, %v, %v", got, ok, err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("root = %q, want %q", got, want)
	}
}

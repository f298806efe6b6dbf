package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/sankeyflow/pkg/errors"
)

func TestParse(t *testing.T) {
	cfg, err := Parse(`
[layout]
width = 800
node_padding = 10

[style]
theme = "dark"
palette = ["#000000", "#ffffff"]

[cache]
ttl = "1h"
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Layout.Width != 800 || cfg.Layout.Height != 600 || cfg.Layout.NodePadding != 10 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("ttl = %v", cfg.Cache.TTL)
	}
	th := cfg.Theme()
	if th.Name != "dark" || len(th.Palette) != 2 {
		t.Errorf("theme = %+v", th)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server defaults lost: %+v", cfg.Server)
	}
}

func TestParseZeroPadding(t *testing.T) {
	cfg, err := Parse("[layout]\nnode_padding = 0\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Layout.NodePadding != 0 {
		t.Errorf("node_padding = %v, want 0", cfg.Layout.NodePadding)
	}
	if cfg.Layout.MinNodeHeight != 20 {
		t.Errorf("min_node_height = %v, want the default 20", cfg.Layout.MinNodeHeight)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		code errors.Code
	}{
		{"syntax", "[layout\n", errors.ErrCodeInvalidInput},
		{"unknown key", "[layout]\ndepth = 3\n", errors.ErrCodeInvalidOption},
		{"bad theme", "[style]\ntheme = \"neon\"\n", errors.ErrCodeInvalidOption},
		{"bad colour", "[style]\npalette = [\"red\"]\n", errors.ErrCodeInvalidOption},
		{"negative width", "[layout]\nwidth = -5\n", errors.ErrCodeInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load default without file: %v", err)
	}
	if cfg.Layout.Width != 1000 {
		t.Errorf("defaults = %+v", cfg.Layout)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("explicit missing file should fail")
	}

	path, _ := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil || cfg.Server.Addr != ":9000" {
		t.Errorf("Load = %+v, %v", cfg.Server, err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	cfg, err := Parse(buf.String())
	if err != nil {
		t.Fatalf("Parse written config: %v\n%s", err, buf.String())
	}
	if cfg.Layout != Default().Layout || cfg.Cache.TTL != Default().Cache.TTL {
		t.Errorf("round trip = %+v", cfg)
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := DefaultCacheDir()
	if err != nil || dir != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("DefaultCacheDir = %q, %v", dir, err)
	}
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	c := New(os.Stderr, LogInfo)

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "sankeyflow")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	c := New(os.Stderr, LogInfo)

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join(xdg, "sankeyflow") {
		t.Errorf("cacheDir() = %q, want under %q", dir, xdg)
	}
}

func TestCacheDirFromConfig(t *testing.T) {
	c := New(os.Stderr, LogInfo)

	c.Config.Cache.Dir = "/var/cache/flows"
	if dir, _ := c.cacheDir(); dir != "/var/cache/flows" {
		t.Errorf("cacheDir() = %q, want /var/cache/flows", dir)
	}

	c.Config.Cache.Dir = "~/flows"
	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) || !strings.HasSuffix(dir, "flows") {
		t.Errorf("cacheDir() = %q, want ~ expanded under %q", dir, home)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cache, err := c.newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if _, ok, _ := cache.Get(t.Context(), "anything"); ok {
		t.Error("disabled cache should never hit")
	}
}

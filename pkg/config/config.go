// Package config loads sankeyflow settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/sankeyflow/config.toml (falling back to
// ~/.config/sankeyflow/config.toml). Every key is optional; missing keys keep
// their defaults:
//
//	[layout]
//	width = 1000
//	height = 600
//	node_width = 25
//	node_padding = 15
//	min_node_height = 20
//
//	[style]
//	theme = "default"
//	animated = false
//	palette = ["#3b82f6", "#10b981"]
//
//	[cache]
//	dir = "~/.cache/sankeyflow"
//	redis_url = "redis://localhost:6379/0"
//	ttl = "168h"
//
//	[server]
//	addr = ":8080"
//	max_body_bytes = 1048576
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
)

// AppName names the config and cache directories.
const AppName = "sankeyflow"

// Config is the full settings tree.
type Config struct {
	Layout layout.Options `toml:"layout"`
	Style  Style          `toml:"style"`
	Cache  Cache          `toml:"cache"`
	Server Server         `toml:"server"`
}

// Style selects the look of rendered diagrams.
type Style struct {
	Theme    string   `toml:"theme"`
	Animated bool     `toml:"animated"`
	Palette  []string `toml:"palette,omitempty"`
}

// Cache configures artifact caching.
type Cache struct {
	Dir      string        `toml:"dir,omitempty"`
	RedisURL string        `toml:"redis_url,omitempty"`
	TTL      time.Duration `toml:"ttl"`
}

// Server configures the HTTP host.
type Server struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Layout: layout.DefaultOptions(),
		Style:  Style{Theme: styles.DefaultTheme.Name},
		Cache:  Cache{TTL: 7 * 24 * time.Hour},
		Server: Server{Addr: ":8080", MaxBodyBytes: 1 << 20},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// DefaultCacheDir returns the XDG cache directory (~/.cache/sankeyflow/).
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads path over the defaults. An empty path means DefaultPath, and a
// missing default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidOption, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Layout.WithDefaults().Validate(); err != nil {
		return err
	}
	if _, ok := styles.LookupTheme(c.Style.Theme); !ok {
		return errors.New(errors.ErrCodeInvalidOption, "unknown theme %q (want one of %s)",
			c.Style.Theme, strings.Join(styles.ThemeNames(), ", "))
	}
	for _, col := range c.Style.Palette {
		if !styles.ValidColor(col) {
			return errors.New(errors.ErrCodeInvalidOption, "invalid palette colour %q", col)
		}
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "cache ttl cannot be negative")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidOption, "server max_body_bytes must be positive")
	}
	return nil
}

// Theme resolves the configured theme, with the palette override applied.
func (c Config) Theme() styles.Theme {
	th, ok := styles.LookupTheme(c.Style.Theme)
	if !ok {
		th = styles.DefaultTheme
	}
	if len(c.Style.Palette) > 0 {
		th.Palette = c.Style.Palette
	}
	return th
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sankeyflow/pkg/buildinfo"
	"github.com/matzehuels/sankeyflow/pkg/cache"
	"github.com/matzehuels/sankeyflow/pkg/config"
	"github.com/matzehuels/sankeyflow/pkg/observability"
	"github.com/matzehuels/sankeyflow/pkg/pipeline"
	"github.com/matzehuels/sankeyflow/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// skipConfig marks commands that run without reading the config file.
const skipConfig = "skip-config"

// Log levels accepted by [New].
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is the --config flag; empty means the XDG default.
	ConfigPath string

	// Verbose is the --verbose flag.
	Verbose bool

	// Config is loaded before any subcommand runs.
	Config config.Config
}

// New creates a new CLI instance with a default logger and default settings.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sankeyflow lays out and renders weighted flows as Sankey diagrams",
		Long:         `Sankeyflow turns weighted links between named nodes into a layered, proportionally sized Sankey diagram and exports it as SVG, PNG, JSON or Graphviz DOT.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Before loadConfig, so the hooks it installs log at this level.
			if c.Verbose {
				c.SetLogLevel(LogDebug)
			}
			if cmd.Annotations[skipConfig] != "" {
				return nil
			}
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.Verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/sankeyflow/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and routes pipeline events to the logger.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	hooks := observability.NewLogHooks(c.Logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cache, nil, c.Logger)
	r.TTL = c.Config.Cache.TTL
	return r, nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default
// (~/.cache/sankeyflow/).
func (c *CLI) cacheDir() (string, error) {
	if dir := c.Config.Cache.Dir; dir != "" {
		return expandHome(dir)
	}
	return config.DefaultCacheDir()
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions returns pipeline options seeded from the config file.
// Command-line flags are bound on top of these.
func (c *CLI) baseOptions() pipeline.Options {
	lo := c.Config.Layout.WithDefaults()
	return pipeline.Options{
		Width:         lo.Width,
		Height:        lo.Height,
		NodeWidth:     lo.NodeWidth,
		NodePadding:   pipeline.Float(lo.NodePadding),
		MinNodeHeight: pipeline.Float(lo.MinNodeHeight),
		Theme:         c.Config.Style.Theme,
		Palette:       c.Config.Style.Palette,
		Animated:      c.Config.Style.Animated,
		Logger:        c.Logger,
	}
}

// parseFormats parses a comma-separated format string into a slice.
// Names are lowercased and deduplicated; an empty string means svg.
func parseFormats(s string) ([]string, error) {
	formats, err := render.ParseFormats(s)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out, nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sankeyflow/internal/server"
	"github.com/matzehuels/sankeyflow/pkg/buildinfo"
	"github.com/matzehuels/sankeyflow/pkg/cache"
	"github.com/matzehuels/sankeyflow/pkg/observability"
	"github.com/matzehuels/sankeyflow/pkg/pipeline"
)

// redisPrefix namespaces server cache entries in a shared Redis.
const redisPrefix = appName + ":"

// serveCommand creates the serve command, which runs the HTTP rendering host.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering host",
		Long: `Run the HTTP rendering host.

Endpoints:
  POST /v1/render   render a dataset (raw bytes for one format, JSON otherwise)
  POST /v1/layout   compute the layout snapshot
  POST /v1/stats    summarize a dataset
  GET  /healthz     build information

Rendered artifacts are cached in Redis when a URL is configured
([cache] redis_url or --redis), otherwise in the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.Config.Server.Addr = addr
			}
			if cmd.Flags().Changed("redis") {
				c.Config.Cache.RedisURL = redisURL
			}
			return c.runServe(cmd.Context(), noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for the shared artifact cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, noCache bool) error {
	backend, err := c.serverCache(ctx, noCache)
	if err != nil {
		return err
	}

	// Entries are scoped by build version.
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Get().Version+":")
	runner := pipeline.NewRunner(backend, keyer, c.Logger)
	runner.TTL = c.Config.Cache.TTL
	defer runner.Close()

	observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))

	srv := server.New(runner, server.Config{
		Addr:         c.Config.Server.Addr,
		MaxBodyBytes: c.Config.Server.MaxBodyBytes,
		Logger:       c.Logger,
	})

	printSuccess("Serving on %s", StyleLink.Render(c.Config.Server.Addr))
	printDetail("Press Ctrl+C to stop")

	err = srv.ListenAndServe(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// serverCache picks Redis when configured and reachable, then the local
// file cache.
func (c *CLI) serverCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := c.Config.Cache.RedisURL; url != "" {
		rc, err := cache.NewRedisCache(ctx, url, redisPrefix)
		if err == nil {
			c.Logger.Info("using redis cache", "url", url)
			return rc, nil
		}
		printWarning("Redis unavailable, using local cache")
		c.Logger.Debug("redis connect failed", "error", err)
	}
	return c.newCache(false)
}

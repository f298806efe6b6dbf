package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sankeyflow/pkg/cache"
	"github.com/matzehuels/sankeyflow/pkg/diagram"
	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/observability"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/sink"
)

// Cache key kinds reported to the cache hooks.
const (
	kindLayout   = "layout"
	kindArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the HTTP host use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger: it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options, since every run builds its own diagram.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-stage cache lifetimes when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
// The dataset is validated once; a diagram is laid out at most once and only
// when a stage misses the cache, then shared by the layout and render stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	hash, err := DatasetHash(opts)
	if err != nil {
		return nil, err
	}
	if opts.ID == "" {
		opts.ID = diagramID(hash)
	}
	result.Graph = g
	result.DatasetHash = hash
	result.Flow = g.Stats()
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.LinkCount = g.LinkCount()

	r.Logger.Info("loaded dataset",
		"source", opts.Source,
		"nodes", g.NodeCount(),
		"links", g.LinkCount(),
		"duration", result.Stats.LoadTime)

	var d *diagram.Diagram
	build := func() (*diagram.Diagram, error) {
		if d == nil {
			var err error
			if d, err = diagramFromGraph(ctx, g, opts); err != nil {
				return nil, err
			}
		}
		return d, nil
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	snap, layoutHit, err := r.layoutStage(ctx, hash, opts, build)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = snap
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"layers", result.Flow.Layers,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderStage(ctx, snap, opts, func() (*diagram.Diagram, error) {
		d, err := build()
		if err != nil {
			return nil, err
		}
		d.SetView(opts.View)
		return d, nil
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load validates the dataset and returns its graph. Loading is never cached.
func (r *Runner) Load(ctx context.Context, opts Options) (*flow.Graph, error) {
	r.applyLogger(&opts)
	return Load(ctx, opts)
}

// Stats loads the dataset and summarizes it.
func (r *Runner) Stats(ctx context.Context, opts Options) (flow.Stats, error) {
	g, err := r.Load(ctx, opts)
	if err != nil {
		return flow.Stats{}, err
	}
	return g.Stats(), nil
}

// LayoutResult is the outcome of [Runner.Layout].
type LayoutResult struct {
	Graph    *flow.Graph
	Snapshot sink.Snapshot
	Cached   bool
}

// Layout validates the dataset once and returns its layout snapshot,
// computing it only on a cache miss.
func (r *Runner) Layout(ctx context.Context, opts Options) (*LayoutResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	g, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	hash, err := DatasetHash(opts)
	if err != nil {
		return nil, err
	}
	if opts.ID == "" {
		opts.ID = diagramID(hash)
	}
	snap, hit, err := r.layoutStage(ctx, hash, opts, func() (*diagram.Diagram, error) {
		return diagramFromGraph(ctx, g, opts)
	})
	if err != nil {
		return nil, err
	}
	return &LayoutResult{Graph: g, Snapshot: snap, Cached: hit}, nil
}

// layoutStage returns the cached snapshot for opts, or snapshots the diagram
// from build at the identity view and caches it. The key covers everything
// the snapshot records: geometry, id, theme, palette and fill mode.
func (r *Runner) layoutStage(ctx context.Context, datasetHash string, opts Options, build func() (*diagram.Diagram, error)) (sink.Snapshot, bool, error) {
	cacheKey := r.Keyer.LayoutKey(datasetHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit := r.get(ctx, kindLayout, cacheKey); hit {
			var cached sink.Snapshot
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
	}

	d, err := build()
	if err != nil {
		return sink.Snapshot{}, false, err
	}
	snap, err := d.Snapshot()
	if err != nil {
		return sink.Snapshot{}, false, err
	}

	if data, err := json.Marshal(snap); err == nil {
		r.set(ctx, kindLayout, cacheKey, data, cache.TTLLayout)
	}
	return snap, false, nil
}

// renderStage returns the cached artifacts when every format hits, and
// otherwise renders all formats from the diagram returned by build.
func (r *Runner) renderStage(ctx context.Context, snap sink.Snapshot, opts Options, build func() (*diagram.Diagram, error)) (map[string][]byte, bool, error) {
	layoutHash, err := cache.HashJSON(snap)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit := r.get(ctx, kindArtifact, cacheKey)
			if !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	d, err := build()
	if err != nil {
		return nil, false, err
	}
	rendered, err := RenderDiagram(ctx, d, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		r.set(ctx, kindArtifact, cacheKey, data, cache.TTLArtifact)
	}
	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// get reads a cache entry and reports the outcome to the cache hooks.
// Read errors count as misses.
func (r *Runner) get(ctx context.Context, kind, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "kind", kind, "error", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, kind)
	} else {
		observability.Cache().OnCacheMiss(ctx, kind)
	}
	return data, hit
}

// set writes a cache entry. Write errors are logged, never returned.
func (r *Runner) set(ctx context.Context, kind, key string, data []byte, ttl time.Duration) {
	if r.TTL > 0 {
		ttl = r.TTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
// It must run before validation, which installs a discard logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

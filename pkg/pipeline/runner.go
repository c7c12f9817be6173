package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mshaler/isogrid/pkg/axis"
	"github.com/mshaler/isogrid/pkg/cache"
	"github.com/mshaler/isogrid/pkg/grid"
	"github.com/mshaler/isogrid/pkg/observability"
)

// Runner encapsulates layout computation with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
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

// ComputeLayoutWithCacheInfo validates the axes, computes (or retrieves)
// the layout, and returns cache hit info alongside the result.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, a axis.Axes, opts Options) (*grid.Layout, bool, error) {
	opts.SetDefaults()

	if err := a.Validate(); err != nil {
		return nil, false, err
	}

	// Structural cache key: canonical axes JSON hash + layout options.
	axesData, err := axis.MarshalAxes(a)
	if err != nil {
		return nil, false, fmt.Errorf("serialize axes for cache key: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(axesData), opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := grid.UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	rowNodes := countNodes(a.Rows.Forest())
	colNodes := countNodes(a.Cols.Forest())
	observability.Layout().OnLayoutStart(ctx, rowNodes, colNodes)

	start := time.Now()
	layout, err := grid.BuildAxes(a, opts.GridOptions())
	elapsed := time.Since(start)
	if err != nil {
		observability.Layout().OnLayoutComplete(ctx, 0, elapsed, err)
		return nil, false, err
	}
	observability.Layout().OnLayoutComplete(ctx, len(layout.DataCells), elapsed, nil)

	r.Logger.Debug("computed layout",
		"row_nodes", rowNodes,
		"col_nodes", colNodes,
		"data_cells", len(layout.DataCells),
		"duration", elapsed)

	// Cache the result
	if data, err := grid.MarshalLayout(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return layout, false, nil
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, a axis.Axes, opts Options) (*grid.Layout, error) {
	layout, _, err := r.ComputeLayoutWithCacheInfo(ctx, a, opts)
	return layout, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func countNodes(f axis.Forest) int {
	total := 0
	var walk func(n *axis.Node)
	walk = func(n *axis.Node) {
		total++
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range f {
		walk(n)
	}
	return total
}

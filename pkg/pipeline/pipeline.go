// Package pipeline provides the cached layout pipeline for Isogrid.
//
// This package implements the load → validate → layout flow shared by the
// CLI and the HTTP API. By centralizing this logic, both entry points get
// identical validation, caching, and logging behavior.
//
// # Memoization
//
// The layout engine is deterministic: structurally identical axes always
// produce deep-equal layouts. The pipeline therefore memoizes results on a
// structural key - the SHA-256 hash of the canonical axes JSON combined
// with the layout-affecting options - rather than on object identity. The
// cache is consulted and invalidated purely through that key, so it can
// never serve a layout for different axis content.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{}
//	layout, err := runner.ComputeLayout(ctx, axes, opts)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/mshaler/isogrid/pkg/cache"
	"github.com/mshaler/isogrid/pkg/grid"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxDataCells bounds the data-cell cross product. The engine
	// itself does not paginate or virtualize, so unbounded axes could
	// produce hundreds of millions of cells; this default keeps a
	// misconfigured caller from doing that by accident. Callers can raise
	// or disable the guard explicitly (-1).
	DefaultMaxDataCells = 250_000
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Template overrides the default track sizes.
	Template grid.TemplateOptions `json:"template,omitempty"`

	// MaxDataCells caps the cross-product size. Zero applies
	// DefaultMaxDataCells; a negative value disables the guard.
	MaxDataCells int `json:"max_data_cells,omitempty"`

	// Refresh bypasses the cache read (the result is still stored).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// SetDefaults applies pipeline defaults. Idempotent.
func (o *Options) SetDefaults() {
	if o.MaxDataCells == 0 {
		o.MaxDataCells = DefaultMaxDataCells
	}
}

// GridOptions converts pipeline options to engine options.
func (o Options) GridOptions() grid.Options {
	max := o.MaxDataCells
	if max < 0 {
		max = 0 // engine treats zero as unlimited
	}
	return grid.Options{
		Template:     o.Template,
		MaxDataCells: max,
	}
}

// LayoutKeyOpts returns the layout-affecting options for cache keying.
func (o Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		MaxDataCells:    o.MaxDataCells,
		HeaderColWidth:  string(o.Template.HeaderColWidth),
		DataColWidth:    string(o.Template.DataColWidth),
		HeaderRowHeight: string(o.Template.HeaderRowHeight),
		DataRowHeight:   string(o.Template.DataRowHeight),
	}
}

// =============================================================================
// Result Types
// =============================================================================

// Stats contains pipeline execution statistics.
type Stats struct {
	RowNodes   int
	ColNodes   int
	DataCells  int
	LayoutTime time.Duration
}

// CacheInfo tracks whether the layout came from cache.
type CacheInfo struct {
	LayoutHit bool
}

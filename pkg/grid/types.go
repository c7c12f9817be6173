package grid

import (
	"github.com/mshaler/isogrid/pkg/axis"
)

// =============================================================================
// Placement - Shared Coordinate Space
// =============================================================================

// Placement is a rectangular region in the grid's track coordinate space.
// Intervals are 1-based and end-exclusive (CSS Grid convention): a cell that
// occupies a single track has End = Start + 1.
//
// Both axes share one coordinate space in which header tracks come before
// data tracks: columns reserve rowHeaderDepth leading tracks for row headers,
// rows reserve colHeaderDepth leading tracks for column headers.
type Placement struct {
	RowStart int `json:"row_start" bson:"row_start"`
	RowEnd   int `json:"row_end" bson:"row_end"`
	ColStart int `json:"col_start" bson:"col_start"`
	ColEnd   int `json:"col_end" bson:"col_end"`
}

// RowSpan returns the number of row tracks the placement covers.
func (p Placement) RowSpan() int { return p.RowEnd - p.RowStart }

// ColSpan returns the number of column tracks the placement covers.
func (p Placement) ColSpan() int { return p.ColEnd - p.ColStart }

// =============================================================================
// Cells
// =============================================================================

// HeaderCell is one placed header, for either axis.
type HeaderCell struct {
	ID        string    `json:"id" bson:"id"`
	Label     string    `json:"label" bson:"label"`
	Placement Placement `json:"placement" bson:"placement"`
	Depth     int       `json:"depth" bson:"depth"`
	Path      []string  `json:"path" bson:"path"`
	IsLeaf    bool      `json:"is_leaf,omitempty" bson:"is_leaf,omitempty"`
}

// CornerCell is one unit cell in the rectangle where the two header bands
// intersect. Row and Col are the 0-based position within that rectangle.
type CornerCell struct {
	Placement Placement `json:"placement" bson:"placement"`
	Label     string    `json:"label,omitempty" bson:"label,omitempty"`
	Row       int       `json:"row" bson:"row"`
	Col       int       `json:"col" bson:"col"`
}

// DataCell is one position in the row-leaf × column-leaf cross product.
// It carries coordinates and leaf paths only; binding a value to the cell is
// the cell-data provider's job, keyed by [CellKey].
type DataCell struct {
	RowLeaf   int       `json:"row_leaf" bson:"row_leaf"` // 0-based row-leaf index
	ColLeaf   int       `json:"col_leaf" bson:"col_leaf"` // 0-based column-leaf index
	RowPath   []string  `json:"row_path" bson:"row_path"`
	ColPath   []string  `json:"col_path" bson:"col_path"`
	Placement Placement `json:"placement" bson:"placement"`
}

// Key returns the canonical cell key for value lookup.
func (c DataCell) Key() string { return CellKey(c.RowPath, c.ColPath) }

// =============================================================================
// Template
// =============================================================================

// TrackSize is a single track's size expression. The engine treats sizes as
// opaque presentation strings (e.g. "max-content", "minmax(96px, 1fr)");
// only track counts and ordering are structural.
type TrackSize string

// Template is the explicit per-track size list for both axes.
// Columns always lists the row-header tracks first, then one data track per
// column leaf; Rows lists the column-header tracks first, then one data track
// per row leaf.
type Template struct {
	Columns []TrackSize `json:"columns" bson:"columns"`
	Rows    []TrackSize `json:"rows" bson:"rows"`
}

// =============================================================================
// Layout
// =============================================================================

// Layout is the complete set of cell placements for one (rowAxis, colAxis)
// pair. It is an ephemeral pure-function result: recomputed from scratch
// whenever either axis changes, never mutated in place.
//
// RowMetrics and ColMetrics are available to in-process consumers but are
// not serialized; the serialized form carries the derived counts, which is
// all a renderer needs.
type Layout struct {
	RowMetrics axis.Metrics `json:"-" bson:"-"`
	ColMetrics axis.Metrics `json:"-" bson:"-"`

	RowHeaderDepth int `json:"row_header_depth" bson:"row_header_depth"`
	ColHeaderDepth int `json:"col_header_depth" bson:"col_header_depth"`
	RowLeafCount   int `json:"row_leaf_count" bson:"row_leaf_count"`
	ColLeafCount   int `json:"col_leaf_count" bson:"col_leaf_count"`

	Template    Template     `json:"template" bson:"template"`
	CornerCells []CornerCell `json:"corner_cells,omitempty" bson:"corner_cells,omitempty"`
	RowHeaders  []HeaderCell `json:"row_headers,omitempty" bson:"row_headers,omitempty"`
	ColHeaders  []HeaderCell `json:"col_headers,omitempty" bson:"col_headers,omitempty"`
	DataCells   []DataCell   `json:"data_cells,omitempty" bson:"data_cells,omitempty"`
}

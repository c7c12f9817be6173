// Package grid turns two axis forests into a complete set of rectangular
// cell placements for a pivot-table grid with nested, spanning headers.
//
// The engine is a pure, deterministic function of its inputs: it computes
// coordinates for header nodes, corner cells, and the full row-leaf ×
// column-leaf cross product of data cells. It never reads or stores cell
// values; an external provider binds values to coordinates via [CellKey].
//
// All placements live in one 1-based, end-exclusive coordinate space in
// which header tracks precede data tracks on both axes. [Build] is the
// entry point; the individual placement functions are exported for
// renderers that need to place ad-hoc cells in the same space.
package grid

import "github.com/mshaler/isogrid/pkg/axis"

// RowHeaderPlacement places one row-axis header node.
// The cell occupies the single column for its depth and spans the rows of
// every leaf beneath it, offset past the column-header band.
//
// Sibling placements at the same depth never overlap: sibling leaf-start
// ranges partition the leaf interval disjointly.
func RowHeaderPlacement(fn axis.FlatNode, colHeaderDepth int) Placement {
	return Placement{
		RowStart: colHeaderDepth + 1 + fn.LeafStart,
		RowEnd:   colHeaderDepth + 1 + fn.LeafStart + fn.LeafCount,
		ColStart: fn.Depth + 1,
		ColEnd:   fn.Depth + 2,
	}
}

// ColHeaderPlacement places one column-axis header node, symmetric to
// [RowHeaderPlacement]: one row at the node's depth, spanning the columns of
// its leaves past the row-header band.
func ColHeaderPlacement(fn axis.FlatNode, rowHeaderDepth int) Placement {
	return Placement{
		RowStart: fn.Depth + 1,
		RowEnd:   fn.Depth + 2,
		ColStart: rowHeaderDepth + 1 + fn.LeafStart,
		ColEnd:   rowHeaderDepth + 1 + fn.LeafStart + fn.LeafCount,
	}
}

// DataCellPlacement places the unit cell for one (row leaf, column leaf)
// pair, offset past both header bands.
func DataCellPlacement(rowLeaf, colLeaf, colHeaderDepth, rowHeaderDepth int) Placement {
	return Placement{
		RowStart: colHeaderDepth + 1 + rowLeaf,
		RowEnd:   colHeaderDepth + 2 + rowLeaf,
		ColStart: rowHeaderDepth + 1 + colLeaf,
		ColEnd:   rowHeaderDepth + 2 + colLeaf,
	}
}

// CornerPlacement places one unit cell of the corner area, the
// colHeaderDepth × rowHeaderDepth rectangle where both header bands
// intersect. Row and col are 0-based within that rectangle.
func CornerPlacement(row, col int) Placement {
	return Placement{
		RowStart: row + 1,
		RowEnd:   row + 2,
		ColStart: col + 1,
		ColEnd:   col + 2,
	}
}

package grid

import (
	"github.com/mshaler/isogrid/pkg/axis"
	"github.com/mshaler/isogrid/pkg/errors"
)

// Options configures layout computation.
type Options struct {
	// Template overrides the default track sizes.
	Template TemplateOptions `json:"template,omitempty" bson:"template,omitempty"`

	// MaxDataCells aborts computation before the cross-product phase when
	// rowLeaves × colLeaves would exceed it. Zero means unlimited. The
	// engine does not paginate or virtualize; callers that may combine
	// large axes must set a guard or window the input themselves.
	MaxDataCells int `json:"max_data_cells,omitempty" bson:"max_data_cells,omitempty"`
}

// Build composes the complete layout for a (rowAxis, colAxis) pair:
// metrics for both forests, the track template, every corner cell, the
// placed header cells for both axes, and the full row-leaf × column-leaf
// cross product of data cells.
//
// Build is pure and synchronous. Structurally identical inputs always yield
// deep-equal layouts; callers wanting memoization should key a cache on a
// structural hash of the forests (see the pipeline package), not on object
// identity.
//
// Returns a LAYOUT_TOO_LARGE error when the cross product would exceed
// opts.MaxDataCells.
func Build(rows, cols axis.Forest, opts Options) (*Layout, error) {
	rowM := axis.ComputeMetrics(rows)
	colM := axis.ComputeMetrics(cols)

	if opts.MaxDataCells > 0 {
		if cells := rowM.LeafCount * colM.LeafCount; cells > opts.MaxDataCells {
			return nil, errors.New(errors.ErrCodeLayoutTooLarge,
				"layout would produce %d data cells (limit %d); reduce the axes or raise the limit",
				cells, opts.MaxDataCells)
		}
	}

	rowHeaderDepth := rowM.Depth
	colHeaderDepth := colM.Depth

	l := &Layout{
		RowMetrics:     rowM,
		ColMetrics:     colM,
		RowHeaderDepth: rowHeaderDepth,
		ColHeaderDepth: colHeaderDepth,
		RowLeafCount:   rowM.LeafCount,
		ColLeafCount:   colM.LeafCount,
		Template:       BuildTemplate(rowM, colM, opts.Template),
	}

	// Corner area: one unit cell per (r, c) in the header intersection.
	l.CornerCells = make([]CornerCell, 0, colHeaderDepth*rowHeaderDepth)
	for r := 0; r < colHeaderDepth; r++ {
		for c := 0; c < rowHeaderDepth; c++ {
			l.CornerCells = append(l.CornerCells, CornerCell{
				Placement: CornerPlacement(r, c),
				Row:       r,
				Col:       c,
			})
		}
	}

	for _, fn := range rowM.HeaderNodes() {
		l.RowHeaders = append(l.RowHeaders, headerCell(fn, RowHeaderPlacement(fn, colHeaderDepth)))
	}
	for _, fn := range colM.HeaderNodes() {
		l.ColHeaders = append(l.ColHeaders, headerCell(fn, ColHeaderPlacement(fn, rowHeaderDepth)))
	}

	// Full cross product, row leaves outer, column leaves inner, both in
	// left-to-right order. A leaf's position in Leaves() equals its
	// LeafStart, so the positional index doubles as the leaf index.
	rowLeaves := rowM.Leaves()
	colLeaves := colM.Leaves()
	l.DataCells = make([]DataCell, 0, len(rowLeaves)*len(colLeaves))
	for ri, rl := range rowLeaves {
		for ci, cl := range colLeaves {
			l.DataCells = append(l.DataCells, DataCell{
				RowLeaf:   ri,
				ColLeaf:   ci,
				RowPath:   rl.Path,
				ColPath:   cl.Path,
				Placement: DataCellPlacement(ri, ci, colHeaderDepth, rowHeaderDepth),
			})
		}
	}

	return l, nil
}

// BuildAxes computes a layout from a full axes document. In addition to
// [Build], it labels the top-left corner cell with the two facet names so
// renderers have something to put in the otherwise blank corner area.
func BuildAxes(a axis.Axes, opts Options) (*Layout, error) {
	l, err := Build(a.Rows.Forest(), a.Cols.Forest(), opts)
	if err != nil {
		return nil, err
	}
	if len(l.CornerCells) > 0 {
		l.CornerCells[0].Label = cornerLabel(a.Rows.Facet, a.Cols.Facet)
	}
	return l, nil
}

func headerCell(fn axis.FlatNode, p Placement) HeaderCell {
	return HeaderCell{
		ID:        fn.Node.ID,
		Label:     fn.Node.Label,
		Placement: p,
		Depth:     fn.Depth,
		Path:      fn.Path,
		IsLeaf:    fn.IsLeaf,
	}
}

func cornerLabel(rowFacet, colFacet string) string {
	switch {
	case rowFacet == "":
		return colFacet
	case colFacet == "":
		return rowFacet
	default:
		return rowFacet + " / " + colFacet
	}
}

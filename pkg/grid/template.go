package grid

import "github.com/mshaler/isogrid/pkg/axis"

// Default track sizes. These are presentation defaults only; track counts
// and ordering are the structural contract.
const (
	DefaultHeaderColWidth  TrackSize = "max-content"
	DefaultDataColWidth    TrackSize = "minmax(96px, 1fr)"
	DefaultHeaderRowHeight TrackSize = "32px"
	DefaultDataRowHeight   TrackSize = "minmax(28px, auto)"
)

// TemplateOptions overrides the default track sizes.
// Zero-valued fields fall back to the defaults.
type TemplateOptions struct {
	HeaderColWidth  TrackSize `json:"header_col_width,omitempty" bson:"header_col_width,omitempty"`
	DataColWidth    TrackSize `json:"data_col_width,omitempty" bson:"data_col_width,omitempty"`
	HeaderRowHeight TrackSize `json:"header_row_height,omitempty" bson:"header_row_height,omitempty"`
	DataRowHeight   TrackSize `json:"data_row_height,omitempty" bson:"data_row_height,omitempty"`
}

func (o TemplateOptions) withDefaults() TemplateOptions {
	if o.HeaderColWidth == "" {
		o.HeaderColWidth = DefaultHeaderColWidth
	}
	if o.DataColWidth == "" {
		o.DataColWidth = DefaultDataColWidth
	}
	if o.HeaderRowHeight == "" {
		o.HeaderRowHeight = DefaultHeaderRowHeight
	}
	if o.DataRowHeight == "" {
		o.DataRowHeight = DefaultDataRowHeight
	}
	return o
}

// BuildTemplate derives the explicit per-track size lists for both axes:
//
//	columns = rowMetrics.Depth header tracks ++ colMetrics.LeafCount data tracks
//	rows    = colMetrics.Depth header tracks ++ rowMetrics.LeafCount data tracks
func BuildTemplate(rowM, colM axis.Metrics, opts TemplateOptions) Template {
	opts = opts.withDefaults()

	columns := make([]TrackSize, 0, rowM.Depth+colM.LeafCount)
	for i := 0; i < rowM.Depth; i++ {
		columns = append(columns, opts.HeaderColWidth)
	}
	for i := 0; i < colM.LeafCount; i++ {
		columns = append(columns, opts.DataColWidth)
	}

	rows := make([]TrackSize, 0, colM.Depth+rowM.LeafCount)
	for i := 0; i < colM.Depth; i++ {
		rows = append(rows, opts.HeaderRowHeight)
	}
	for i := 0; i < rowM.LeafCount; i++ {
		rows = append(rows, opts.DataRowHeight)
	}

	return Template{Columns: columns, Rows: rows}
}

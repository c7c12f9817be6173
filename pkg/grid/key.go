package grid

import "strings"

// Cell-key separators. Node IDs must not contain either sequence; that is
// enforced at axis construction time, not here.
const (
	pathSeparator = "/"
	keySeparator  = "::"
)

// CellRef is a decoded cell key: the row-leaf path and column-leaf path that
// identify one data cell.
type CellRef struct {
	RowPath []string `json:"row_path" bson:"row_path"`
	ColPath []string `json:"col_path" bson:"col_path"`
}

// CellKey encodes a (rowPath, colPath) pair as a canonical string key for
// O(1) value lookup by cell-data providers:
//
//	join(rowPath, "/") + "::" + join(colPath, "/")
//
// The encoding is reversible via [ParseCellKey] for any paths whose
// segments contain neither "/" nor "::".
func CellKey(rowPath, colPath []string) string {
	return strings.Join(rowPath, pathSeparator) + keySeparator + strings.Join(colPath, pathSeparator)
}

// ParseCellKey decodes a cell key. The second return value is false when the
// input is not a composite key, i.e. it does not contain exactly one "::"
// separator. It never panics on malformed input.
func ParseCellKey(key string) (CellRef, bool) {
	parts := strings.Split(key, keySeparator)
	if len(parts) != 2 {
		return CellRef{}, false
	}
	return CellRef{
		RowPath: strings.Split(parts[0], pathSeparator),
		ColPath: strings.Split(parts[1], pathSeparator),
	}, true
}

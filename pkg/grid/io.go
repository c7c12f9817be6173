package grid

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
// The in-memory metrics are not serialized; the derived counts are.
func MarshalLayout(l *Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and checks the
// structural invariants that every well-formed layout satisfies.
func UnmarshalLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshal layout: %w", err)
	}

	if got, want := len(l.Template.Columns), l.RowHeaderDepth+l.ColLeafCount; got != want {
		return nil, fmt.Errorf("layout has %d column tracks, want %d", got, want)
	}
	if got, want := len(l.Template.Rows), l.ColHeaderDepth+l.RowLeafCount; got != want {
		return nil, fmt.Errorf("layout has %d row tracks, want %d", got, want)
	}
	if got, want := len(l.DataCells), l.RowLeafCount*l.ColLeafCount; got != want {
		return nil, fmt.Errorf("layout has %d data cells, want %d", got, want)
	}
	if got, want := len(l.CornerCells), l.RowHeaderDepth*l.ColHeaderDepth; got != want {
		return nil, fmt.Errorf("layout has %d corner cells, want %d", got, want)
	}

	return &l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l *Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}

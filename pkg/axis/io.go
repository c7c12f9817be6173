package axis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Axes Serialization API
// =============================================================================

// Axes is the canonical serialization format for a grid's two axis
// configurations. This is the document a caller saves, loads, and posts to
// the layout API.
type Axes struct {
	Rows Config `json:"rows" bson:"rows"`
	Cols Config `json:"cols" bson:"cols"`
}

// Validate validates both axis configurations.
func (a Axes) Validate() error {
	if err := ValidateConfig(a.Rows); err != nil {
		return fmt.Errorf("rows axis: %w", err)
	}
	if err := ValidateConfig(a.Cols); err != nil {
		return fmt.Errorf("cols axis: %w", err)
	}
	return nil
}

// MarshalAxes converts an axes document to JSON bytes.
func MarshalAxes(a Axes) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeAxesTo(a, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteAxesFile writes an axes document to a JSON file.
// The file is created with 0644 permissions.
func WriteAxesFile(a Axes, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeAxesTo(a, f)
}

// WriteAxes writes an axes document as JSON to an io.Writer.
func WriteAxes(a Axes, w io.Writer) error {
	return writeAxesTo(a, w)
}

// ReadAxesFile reads a JSON file and returns the decoded axes document.
// Returns validation errors for malformed axes (duplicate or key-unsafe IDs).
func ReadAxesFile(path string) (Axes, error) {
	f, err := os.Open(path)
	if err != nil {
		return Axes{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readAxesFrom(f)
}

// ReadAxes decodes a JSON axes document from an io.Reader.
func ReadAxes(r io.Reader) (Axes, error) {
	return readAxesFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeAxesTo(a Axes, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readAxesFrom(r io.Reader) (Axes, error) {
	var a Axes
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return Axes{}, fmt.Errorf("decode: %w", err)
	}
	if err := a.Validate(); err != nil {
		return Axes{}, err
	}
	return a, nil
}

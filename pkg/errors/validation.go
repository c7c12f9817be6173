package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates an axis node identifier.
// Node IDs become path segments in cell keys, so the cell-key separators
// are rejected here rather than checked again at encoding time.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separator "/" or key separator "::"
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNodeID, "node ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNodeID, "node ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNodeID, "node ID %q contains control characters", id)
		}
	}

	// Reserved by the cell-key codec.
	reserved := []string{"/", "::"}
	for _, sep := range reserved {
		if strings.Contains(id, sep) {
			return New(ErrCodeInvalidNodeID, "node ID %q contains reserved sequence %q", id, sep)
		}
	}

	return nil
}

// ValidateFacet validates an axis facet label.
// Facets are opaque display strings: empty is allowed (the corner label
// simply omits it), only control characters are rejected.
func ValidateFacet(facet string) error {
	for _, r := range facet {
		if unicode.IsControl(r) && r != '\t' {
			return New(ErrCodeInvalidAxis, "axis facet contains control characters")
		}
	}
	return nil
}

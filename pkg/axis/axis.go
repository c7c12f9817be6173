// Package axis defines the hierarchical category trees that describe the two
// dimensions of a pivot grid, and computes per-node layout metadata over them.
//
// An axis is a forest of category nodes. Each terminal node (leaf) corresponds
// to exactly one row or column of actual data; each internal node spans the
// contiguous block of leaves beneath it. ComputeMetrics walks a forest once
// and produces the depth and leaf-span information the grid package needs to
// place headers and data cells.
//
// Interchange formats that represent a forest as a single container node with
// a synthetic root are supported via [Config]: only the root's children are
// real data, and the root's own ID and label are discarded.
package axis

import (
	"github.com/mshaler/isogrid/pkg/errors"
)

// Node is one category in an axis tree.
// A node with no children (nil or empty slice, the two are equivalent) is a
// leaf and maps to a single data track.
type Node struct {
	ID       string  `json:"id" bson:"id"`
	Label    string  `json:"label" bson:"label"`
	Children []*Node `json:"children,omitempty" bson:"children,omitempty"`
}

// IsLeaf reports whether the node has no children.
// A nil Children slice and an empty one are treated identically.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Forest is an ordered list of top-level axis categories.
// It replaces the synthetic-root container convention: there is no
// non-rendered ancestor node, and no reserved root ID.
type Forest []*Node

// Config describes one axis of a grid as supplied by callers.
// Tree uses the synthetic-root convention common in interchange formats:
// the root node itself is a container whose children are the real top-level
// categories. Type and Facet are opaque classification tags carried through
// unchanged.
type Config struct {
	Type  string `json:"type" bson:"type"`
	Facet string `json:"facet" bson:"facet"`
	Tree  *Node  `json:"tree" bson:"tree"`
}

// Forest extracts the real top-level categories from the synthetic-root
// container. A nil tree yields a nil forest (zero leaves, zero depth).
func (c Config) Forest() Forest {
	if c.Tree == nil {
		return nil
	}
	return Forest(c.Tree.Children)
}

// Validate checks construction invariants over the whole forest:
// every node is non-nil, every node ID is well formed (see
// [errors.ValidateNodeID]), and IDs are unique within the forest. The
// metrics computer assumes these hold and does not re-check them.
//
// Nil nodes come up in practice: a literal null in a JSON children array
// decodes to a nil *Node.
func Validate(f Forest) error {
	seen := make(map[string]string) // id -> parent id ("" for top level)
	var walk func(n *Node, parent string) error
	walk = func(n *Node, parent string) error {
		if n == nil {
			return errors.New(errors.ErrCodeInvalidAxis, "axis tree contains a null node under %q", parentLabel(parent))
		}
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return err
		}
		if prev, dup := seen[n.ID]; dup {
			if prev == parent {
				return errors.New(errors.ErrCodeDuplicateID, "duplicate sibling ID %q under %q", n.ID, parentLabel(parent))
			}
			return errors.New(errors.ErrCodeDuplicateID, "node ID %q appears more than once in the axis", n.ID)
		}
		seen[n.ID] = parent
		for _, c := range n.Children {
			if err := walk(c, n.ID); err != nil {
				return err
			}
		}
		return nil
	}
	for _, n := range f {
		if err := walk(n, ""); err != nil {
			return err
		}
	}
	return nil
}

// ValidateConfig validates an axis configuration: its facet label and the
// forest under its synthetic root.
func ValidateConfig(c Config) error {
	if err := errors.ValidateFacet(c.Facet); err != nil {
		return err
	}
	return Validate(c.Forest())
}

func parentLabel(parent string) string {
	if parent == "" {
		return "top level"
	}
	return parent
}

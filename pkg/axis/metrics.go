package axis

import "slices"

// FlatNode is the computed layout metadata for one node of an axis forest.
type FlatNode struct {
	Node      *Node    // the underlying category node
	Depth     int      // 0-based header level
	LeafStart int      // 0-based offset into the axis's leaf sequence
	LeafCount int      // number of leaves spanned (1 for a leaf)
	Path      []string // IDs from top-level ancestor down to this node
	IsLeaf    bool
}

// Metrics is the result of walking one axis forest.
//
// Invariants (guaranteed for any forest):
//   - an internal node's LeafCount is the sum of its children's
//   - sibling LeafStart values are contiguous and strictly increasing
//   - Depth == 1 + max FlatNode.Depth, or 0 for an empty forest
type Metrics struct {
	Depth     int        // number of header levels
	LeafCount int        // total number of leaves
	FlatNodes []FlatNode // every node, children before their parent
}

// ComputeMetrics walks a forest depth-first, left to right, and computes
// depth and leaf-span metadata for every node. Leaves are emitted in
// left-to-right order; an internal node is emitted after its children.
//
// The walk is a pure function of the forest's structure: two structurally
// identical forests yield deep-equal metrics regardless of object identity.
// An empty or nil forest yields Depth 0, LeafCount 0 and no flat nodes.
func ComputeMetrics(f Forest) Metrics {
	var m Metrics
	cursor := 0

	var walk func(n *Node, depth int, prefix []string) (leafStart, leafCount int)
	walk = func(n *Node, depth int, prefix []string) (int, int) {
		if n == nil {
			// Validate rejects null nodes; skipping here keeps the walk
			// total on input that bypassed validation.
			return cursor, 0
		}
		path := append(slices.Clone(prefix), n.ID)
		if depth+1 > m.Depth {
			m.Depth = depth + 1
		}

		if n.IsLeaf() {
			start := cursor
			cursor++
			m.FlatNodes = append(m.FlatNodes, FlatNode{
				Node:      n,
				Depth:     depth,
				LeafStart: start,
				LeafCount: 1,
				Path:      path,
				IsLeaf:    true,
			})
			return start, 1
		}

		start, total := -1, 0
		for _, c := range n.Children {
			s, cnt := walk(c, depth+1, path)
			if start < 0 {
				start = s
			}
			total += cnt
		}
		m.FlatNodes = append(m.FlatNodes, FlatNode{
			Node:      n,
			Depth:     depth,
			LeafStart: start,
			LeafCount: total,
			Path:      path,
		})
		return start, total
	}

	for _, n := range f {
		walk(n, 0, nil)
	}
	m.LeafCount = cursor
	return m
}

// Leaves returns the leaf nodes in left-to-right order.
// A leaf's position in the returned slice always equals its LeafStart.
func (m Metrics) Leaves() []FlatNode {
	leaves := make([]FlatNode, 0, m.LeafCount)
	for _, fn := range m.FlatNodes {
		if fn.IsLeaf {
			leaves = append(leaves, fn)
		}
	}
	return leaves
}

// HeaderNodes returns every node that gets a header cell.
// With the explicit forest representation there is no synthetic root entry
// to filter out, so this is simply all flat nodes.
func (m Metrics) HeaderNodes() []FlatNode {
	return m.FlatNodes
}

// FindByID returns the flat node with the given ID.
// Linear scan; fine at the expected axis sizes (low hundreds of nodes).
func (m Metrics) FindByID(id string) (FlatNode, bool) {
	for _, fn := range m.FlatNodes {
		if fn.Node.ID == id {
			return fn, true
		}
	}
	return FlatNode{}, false
}

// FindByPath returns the flat node whose path matches exactly.
func (m Metrics) FindByPath(path []string) (FlatNode, bool) {
	for _, fn := range m.FlatNodes {
		if slices.Equal(fn.Path, path) {
			return fn, true
		}
	}
	return FlatNode{}, false
}

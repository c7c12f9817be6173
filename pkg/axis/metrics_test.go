package axis

import (
	"slices"
	"testing"
)

// n builds a node whose label mirrors its ID.
func n(id string, children ...*Node) *Node {
	return &Node{ID: id, Label: id, Children: children}
}

// rowForest is the three-level axis used across the grid tests:
// FutureME{Learning{Tools, Progress}, Growth{Fitness, Health}}.
func rowForest() Forest {
	return Forest{
		n("FutureME",
			n("Learning", n("Tools"), n("Progress")),
			n("Growth", n("Fitness"), n("Health")),
		),
	}
}

// colForest is the two-level axis: 2022{Q1, Q2}.
func colForest() Forest {
	return Forest{n("2022", n("Q1"), n("Q2"))}
}

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name      string
		forest    Forest
		depth     int
		leafCount int
		flatCount int
	}{
		{name: "empty", forest: nil, depth: 0, leafCount: 0, flatCount: 0},
		{name: "single leaf", forest: Forest{n("a")}, depth: 1, leafCount: 1, flatCount: 1},
		{name: "flat siblings", forest: Forest{n("a"), n("b"), n("c")}, depth: 1, leafCount: 3, flatCount: 3},
		{name: "three levels", forest: rowForest(), depth: 3, leafCount: 4, flatCount: 7},
		{name: "two levels", forest: colForest(), depth: 2, leafCount: 2, flatCount: 3},
		{
			name: "uneven depth",
			forest: Forest{
				n("a", n("a1", n("a1x"))),
				n("b"),
			},
			depth:     3,
			leafCount: 2,
			flatCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeMetrics(tt.forest)
			if m.Depth != tt.depth {
				t.Errorf("Depth = %d, want %d", m.Depth, tt.depth)
			}
			if m.LeafCount != tt.leafCount {
				t.Errorf("LeafCount = %d, want %d", m.LeafCount, tt.leafCount)
			}
			if len(m.FlatNodes) != tt.flatCount {
				t.Errorf("len(FlatNodes) = %d, want %d", len(m.FlatNodes), tt.flatCount)
			}
			checkInvariants(t, m)
		})
	}
}

// checkInvariants verifies the structural properties every metrics result
// must satisfy: leaf counts sum up, sibling leaf starts are contiguous,
// and depth is one more than the deepest flat node.
func checkInvariants(t *testing.T, m Metrics) {
	t.Helper()

	maxDepth := -1
	for _, fn := range m.FlatNodes {
		if fn.Depth > maxDepth {
			maxDepth = fn.Depth
		}
		if fn.IsLeaf && fn.LeafCount != 1 {
			t.Errorf("leaf %s LeafCount = %d, want 1", fn.Node.ID, fn.LeafCount)
		}
		if !fn.IsLeaf {
			sum := 0
			cursor := -1
			for _, c := range fn.Node.Children {
				cf, ok := m.FindByID(c.ID)
				if !ok {
					t.Fatalf("child %s of %s missing from flat nodes", c.ID, fn.Node.ID)
				}
				sum += cf.LeafCount
				if cursor >= 0 && cf.LeafStart != cursor {
					t.Errorf("child %s LeafStart = %d, want contiguous %d", c.ID, cf.LeafStart, cursor)
				}
				cursor = cf.LeafStart + cf.LeafCount
			}
			if sum != fn.LeafCount {
				t.Errorf("node %s LeafCount = %d, children sum %d", fn.Node.ID, fn.LeafCount, sum)
			}
		}
	}

	if m.LeafCount > 0 && m.Depth != maxDepth+1 {
		t.Errorf("Depth = %d, want 1+max(depth) = %d", m.Depth, maxDepth+1)
	}

	for i, leaf := range m.Leaves() {
		if leaf.LeafStart != i {
			t.Errorf("leaf %s at position %d has LeafStart %d", leaf.Node.ID, i, leaf.LeafStart)
		}
	}
}

func TestComputeMetricsWorkedTree(t *testing.T) {
	m := ComputeMetrics(rowForest())

	want := map[string]FlatNode{
		"FutureME": {Depth: 0, LeafStart: 0, LeafCount: 4},
		"Learning": {Depth: 1, LeafStart: 0, LeafCount: 2},
		"Growth":   {Depth: 1, LeafStart: 2, LeafCount: 2},
		"Tools":    {Depth: 2, LeafStart: 0, LeafCount: 1, IsLeaf: true},
		"Progress": {Depth: 2, LeafStart: 1, LeafCount: 1, IsLeaf: true},
		"Fitness":  {Depth: 2, LeafStart: 2, LeafCount: 1, IsLeaf: true},
		"Health":   {Depth: 2, LeafStart: 3, LeafCount: 1, IsLeaf: true},
	}

	for id, w := range want {
		fn, ok := m.FindByID(id)
		if !ok {
			t.Fatalf("node %s not found", id)
		}
		if fn.Depth != w.Depth || fn.LeafStart != w.LeafStart || fn.LeafCount != w.LeafCount || fn.IsLeaf != w.IsLeaf {
			t.Errorf("%s = {depth %d, start %d, count %d, leaf %v}, want {%d, %d, %d, %v}",
				id, fn.Depth, fn.LeafStart, fn.LeafCount, fn.IsLeaf, w.Depth, w.LeafStart, w.LeafCount, w.IsLeaf)
		}
	}

	tools, _ := m.FindByID("Tools")
	if !slices.Equal(tools.Path, []string{"FutureME", "Learning", "Tools"}) {
		t.Errorf("Tools path = %v", tools.Path)
	}
}

func TestComputeMetricsPostOrder(t *testing.T) {
	m := ComputeMetrics(colForest())

	// Children are emitted before their parent.
	ids := make([]string, len(m.FlatNodes))
	for i, fn := range m.FlatNodes {
		ids[i] = fn.Node.ID
	}
	if !slices.Equal(ids, []string{"Q1", "Q2", "2022"}) {
		t.Errorf("emission order = %v, want [Q1 Q2 2022]", ids)
	}
}

func TestLeafNilVsEmptyChildren(t *testing.T) {
	// A nil Children slice and an empty one must behave identically.
	withNil := Forest{n("p", &Node{ID: "a", Label: "a"})}
	withEmpty := Forest{n("p", &Node{ID: "a", Label: "a", Children: []*Node{}})}

	ma := ComputeMetrics(withNil)
	mb := ComputeMetrics(withEmpty)

	if ma.Depth != mb.Depth || ma.LeafCount != mb.LeafCount || len(ma.FlatNodes) != len(mb.FlatNodes) {
		t.Fatalf("nil vs empty children diverge: %+v vs %+v", ma, mb)
	}
	for i := range ma.FlatNodes {
		a, b := ma.FlatNodes[i], mb.FlatNodes[i]
		if a.IsLeaf != b.IsLeaf || a.LeafStart != b.LeafStart || a.LeafCount != b.LeafCount {
			t.Errorf("flat node %d diverges: %+v vs %+v", i, a, b)
		}
	}
}

func TestStructuralDeterminism(t *testing.T) {
	// Two structurally identical forests built from distinct objects
	// produce deep-equal metrics.
	a := ComputeMetrics(rowForest())
	b := ComputeMetrics(rowForest())

	if a.Depth != b.Depth || a.LeafCount != b.LeafCount || len(a.FlatNodes) != len(b.FlatNodes) {
		t.Fatal("structurally identical forests produced different metrics")
	}
	for i := range a.FlatNodes {
		x, y := a.FlatNodes[i], b.FlatNodes[i]
		if x.Node.ID != y.Node.ID || x.Depth != y.Depth || x.LeafStart != y.LeafStart ||
			x.LeafCount != y.LeafCount || x.IsLeaf != y.IsLeaf || !slices.Equal(x.Path, y.Path) {
			t.Errorf("flat node %d differs: %+v vs %+v", i, x, y)
		}
	}
}

func TestFindByPath(t *testing.T) {
	m := ComputeMetrics(rowForest())

	fn, ok := m.FindByPath([]string{"FutureME", "Growth", "Health"})
	if !ok || fn.Node.ID != "Health" {
		t.Fatalf("FindByPath = %v, %v", fn.Node, ok)
	}

	if _, ok := m.FindByPath([]string{"FutureME", "Health"}); ok {
		t.Error("FindByPath matched a non-existent path")
	}
}

func TestConfigForest(t *testing.T) {
	cfg := Config{
		Type:  "when",
		Facet: "Quarter",
		Tree:  n("root", n("2022", n("Q1"), n("Q2"))),
	}
	f := cfg.Forest()
	if len(f) != 1 || f[0].ID != "2022" {
		t.Fatalf("Forest() = %v, want the root's children", f)
	}

	// The synthetic root itself never appears in metrics.
	m := ComputeMetrics(f)
	if _, ok := m.FindByID("root"); ok {
		t.Error("synthetic root leaked into flat nodes")
	}

	if got := (Config{}).Forest(); got != nil {
		t.Errorf("empty config Forest() = %v, want nil", got)
	}
}

func TestComputeMetricsSkipsNilNodes(t *testing.T) {
	// Unvalidated input can carry nil nodes (a JSON null in a children
	// array). The walk must skip them, not dereference them.
	f := Forest{nil, &Node{ID: "p", Children: []*Node{nil, n("a")}}}
	m := ComputeMetrics(f)

	if m.LeafCount != 1 {
		t.Errorf("LeafCount = %d, want 1", m.LeafCount)
	}
	if _, ok := m.FindByID("a"); !ok {
		t.Error("node a missing from flat nodes")
	}
}

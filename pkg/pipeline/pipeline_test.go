package pipeline

import (
	"context"
	"testing"

	"github.com/mshaler/isogrid/pkg/axis"
	"github.com/mshaler/isogrid/pkg/cache"
	"github.com/mshaler/isogrid/pkg/errors"
)

func testAxes() axis.Axes {
	node := func(id string, children ...*axis.Node) *axis.Node {
		return &axis.Node{ID: id, Label: id, Children: children}
	}
	return axis.Axes{
		Rows: axis.Config{
			Type: "what", Facet: "Topic",
			Tree: node("root",
				node("FutureME",
					node("Learning", node("Tools"), node("Progress")),
					node("Growth", node("Fitness"), node("Health")),
				),
			),
		},
		Cols: axis.Config{
			Type: "when", Facet: "Quarter",
			Tree: node("root", node("2022", node("Q1"), node("Q2"))),
		},
	}
}

func TestRunnerComputeLayout(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	layout, err := runner.ComputeLayout(context.Background(), testAxes(), Options{})
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}

	if len(layout.DataCells) != 8 {
		t.Errorf("data cells = %d, want 8", len(layout.DataCells))
	}
	if layout.RowHeaderDepth != 3 || layout.ColHeaderDepth != 2 {
		t.Errorf("depths = %d/%d, want 3/2", layout.RowHeaderDepth, layout.ColHeaderDepth)
	}
}

func TestRunnerCaching(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	// First computation is a miss.
	_, hit, err := runner.ComputeLayoutWithCacheInfo(ctx, testAxes(), Options{})
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	if hit {
		t.Error("first computation should be a cache miss")
	}

	// Structurally identical axes hit the cache even though the objects differ.
	cached, hit, err := runner.ComputeLayoutWithCacheInfo(ctx, testAxes(), Options{})
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}
	if !hit {
		t.Error("structurally identical axes should hit the cache")
	}
	if len(cached.DataCells) != 8 {
		t.Errorf("cached layout has %d data cells, want 8", len(cached.DataCells))
	}

	// Refresh bypasses the cache read.
	_, hit, err = runner.ComputeLayoutWithCacheInfo(ctx, testAxes(), Options{Refresh: true})
	if err != nil {
		t.Fatalf("refresh compute: %v", err)
	}
	if hit {
		t.Error("refresh should bypass the cache")
	}

	// Different options must not share a cache entry.
	_, hit, err = runner.ComputeLayoutWithCacheInfo(ctx, testAxes(), Options{MaxDataCells: 99})
	if err != nil {
		t.Fatalf("compute with options: %v", err)
	}
	if hit {
		t.Error("different options should produce a different cache key")
	}
}

func TestRunnerValidatesAxes(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	bad := testAxes()
	bad.Rows.Tree.Children[0].Children = append(bad.Rows.Tree.Children[0].Children,
		&axis.Node{ID: "Learning", Label: "dup"})

	_, err := runner.ComputeLayout(context.Background(), bad, Options{})
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Fatalf("ComputeLayout = %v, want DUPLICATE_NODE_ID", err)
	}
}

func TestRunnerSizeGuard(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.ComputeLayout(context.Background(), testAxes(), Options{MaxDataCells: 4})
	if !errors.Is(err, errors.ErrCodeLayoutTooLarge) {
		t.Fatalf("ComputeLayout = %v, want LAYOUT_TOO_LARGE", err)
	}

	// Negative disables the guard.
	if _, err := runner.ComputeLayout(context.Background(), testAxes(), Options{MaxDataCells: -1}); err != nil {
		t.Fatalf("ComputeLayout with guard disabled: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.MaxDataCells != DefaultMaxDataCells {
		t.Errorf("MaxDataCells = %d, want %d", o.MaxDataCells, DefaultMaxDataCells)
	}

	// Idempotent, and explicit values survive.
	o.MaxDataCells = 42
	o.SetDefaults()
	if o.MaxDataCells != 42 {
		t.Errorf("SetDefaults overwrote explicit MaxDataCells: %d", o.MaxDataCells)
	}
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/mshaler/isogrid/pkg/axis"
	"github.com/mshaler/isogrid/pkg/errors"
	"github.com/mshaler/isogrid/pkg/grid"
)

func testDocument(t *testing.T, id string, createdAt time.Time) Document {
	t.Helper()
	axes := axis.Axes{
		Rows: axis.Config{
			Type: "rows", Facet: "project",
			Tree: &axis.Node{ID: "root", Label: "project", Children: []*axis.Node{
				{ID: "a", Label: "A"},
				{ID: "b", Label: "B"},
			}},
		},
		Cols: axis.Config{
			Type: "cols", Facet: "quarter",
			Tree: &axis.Node{ID: "root", Label: "quarter", Children: []*axis.Node{
				{ID: "q1", Label: "Q1"},
			}},
		},
	}
	layout, err := grid.BuildAxes(axes, grid.Options{})
	if err != nil {
		t.Fatalf("BuildAxes() error = %v", err)
	}
	return Document{ID: id, Name: "doc " + id, CreatedAt: createdAt, Axes: axes, Layout: layout}
}

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	doc := testDocument(t, "doc-1", time.Now())
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != doc.ID || got.Name != doc.Name {
		t.Errorf("Get() = %q/%q, want %q/%q", got.ID, got.Name, doc.ID, doc.Name)
	}
	if got.Layout == nil || len(got.Layout.DataCells) != len(doc.Layout.DataCells) {
		t.Errorf("Get() layout not preserved")
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	if err == nil {
		t.Fatal("Get() expected error for missing document")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeLayoutNotFound {
		t.Errorf("Get() error code = %v, want %v", code, errors.ErrCodeLayoutNotFound)
	}
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	doc := testDocument(t, "doc-1", time.Now())
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	doc.Name = "renamed"
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "renamed" {
		t.Errorf("Get() name = %q, want %q", got.Name, "renamed")
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		doc := testDocument(t, id, base.Add(time.Duration(i)*time.Hour))
		if err := s.Save(ctx, doc); err != nil {
			t.Fatalf("Save(%q) error = %v", id, err)
		}
	}

	summaries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("List() returned %d summaries, want 3", len(summaries))
	}
	wantOrder := []string{"new", "mid", "old"}
	for i, want := range wantOrder {
		if summaries[i].ID != want {
			t.Errorf("List()[%d] = %q, want %q", i, summaries[i].ID, want)
		}
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	doc := testDocument(t, "doc-1", time.Now())
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Delete(ctx, "doc-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "doc-1"); err == nil {
		t.Error("Get() after Delete() expected error")
	}

	// Deleting a missing ID is not an error.
	if err := s.Delete(ctx, "doc-1"); err != nil {
		t.Errorf("Delete() of missing ID error = %v", err)
	}
}

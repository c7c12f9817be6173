// Package store persists saved grid documents.
//
// A document pairs the axes a user configured with the layout computed from
// them, so the API can hand back a stable ID instead of re-sending the full
// layout. Backends:
//   - MemoryStore: in-process storage for development and tests
//   - MongoStore: durable storage for the hosted API
package store

import (
	"context"
	"time"

	"github.com/mshaler/isogrid/pkg/axis"
	"github.com/mshaler/isogrid/pkg/errors"
	"github.com/mshaler/isogrid/pkg/grid"
)

// Document is one saved grid: the axes and the layout computed from them.
type Document struct {
	ID        string       `json:"id" bson:"_id"`
	Name      string       `json:"name,omitempty" bson:"name,omitempty"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	Axes      axis.Axes    `json:"axes" bson:"axes"`
	Layout    *grid.Layout `json:"layout" bson:"layout"`
}

// Summary is the listing view of a document, without the layout payload.
type Summary struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Store is the interface for document storage backends.
type Store interface {
	// Save stores a document, replacing any existing one with the same ID.
	Save(ctx context.Context, doc Document) error

	// Get retrieves a document by ID.
	// Returns a LAYOUT_NOT_FOUND error when the document doesn't exist.
	Get(ctx context.Context, id string) (Document, error)

	// List returns summaries of all documents, newest first.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes a document. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NotFound builds the standard missing-document error.
func NotFound(id string) error {
	return errors.New(errors.ErrCodeLayoutNotFound, "layout document %q not found", id)
}

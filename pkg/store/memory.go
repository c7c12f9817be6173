package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps documents in process memory. Contents are lost when the
// process exits; it backs development servers and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

// Save stores a document, replacing any existing one with the same ID.
func (s *MemoryStore) Save(_ context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return nil
}

// Get retrieves a document by ID.
func (s *MemoryStore) Get(_ context.Context, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return Document{}, NotFound(id)
	}
	return doc, nil
}

// List returns summaries of all documents, newest first.
func (s *MemoryStore) List(_ context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]Summary, 0, len(s.docs))
	for _, doc := range s.docs {
		summaries = append(summaries, Summary{
			ID:        doc.ID,
			Name:      doc.Name,
			CreatedAt: doc.CreatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// Delete removes a document. Missing IDs are ignored.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close(_ context.Context) error {
	return nil
}

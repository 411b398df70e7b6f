// ABOUTME: Store owns the in-memory Document and the mutate-then-persist pipeline.
// ABOUTME: Every mutation is one synchronous transition followed by a snapshot save.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/harperreed/willow/internal/storage"
)

// Store is the single state owner. It is constructed once at startup and
// passed by reference to every consumer; all mutations go through it.
//
// Mutations take the lock, apply one transition to the document, and write the
// whole snapshot through the backend. A failed save is returned as the
// mutation's error; the in-memory document stays authoritative either way.
type Store struct {
	mu      sync.Mutex
	doc     *Document
	backend storage.Backend
}

// Open loads the snapshot from the backend, starting fresh when none exists.
func Open(backend storage.Backend) (*Store, error) {
	data, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	doc := NewDocument()
	if data != nil {
		doc = &Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
	}

	return &Store{doc: doc, backend: backend}, nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Backend exposes the underlying snapshot backend, used by sync and
// migration commands that need backend-specific operations.
func (s *Store) Backend() storage.Backend {
	return s.backend
}

// mutate runs one state transition and persists the resulting snapshot.
func (s *Store) mutate(fn func(doc *Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
	return s.persist()
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.backend.Save(data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Replace swaps in a whole document, used by import. The previous state is
// gone once the snapshot saves.
func (s *Store) Replace(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	return s.persist()
}

// Snapshot returns a deep copy of the current document. Readers filter and
// derive from the copy; the store never pre-filters or caches derived values.
func (s *Store) Snapshot() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(s.doc)
	if err != nil {
		return NewDocument()
	}
	var copy Document
	if err := json.Unmarshal(data, &copy); err != nil {
		return NewDocument()
	}
	return &copy
}

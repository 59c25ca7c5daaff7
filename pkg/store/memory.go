package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/sketch3d/pkg/errors"
	"github.com/matzehuels/sketch3d/pkg/observability"
)

// MemoryStore is an in-memory scene store for development and testing.
// Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	scenes map[string]Scene
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scenes: map[string]Scene{}}
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, name string) (*Scene, error) {
	started := time.Now()
	s.mu.RLock()
	sc, ok := s.scenes[name]
	s.mu.RUnlock()

	observability.Store().OnStoreGet(name, ok, time.Since(started))
	if !ok {
		return nil, errors.New(errors.ErrCodeSceneNotFound, "scene %q not found", name)
	}
	return &sc, nil
}

// Put implements Store.
func (s *MemoryStore) Put(ctx context.Context, sc *Scene) error {
	started := time.Now()
	now := time.Now()

	s.mu.Lock()
	doc := *sc
	doc.UpdatedAt = now
	if prev, ok := s.scenes[sc.Name]; ok {
		doc.CreatedAt = prev.CreatedAt
	} else if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	s.scenes[sc.Name] = doc
	s.mu.Unlock()

	observability.Store().OnStorePut(sc.Name, len(sc.Source), time.Since(started))
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scenes[name]; !ok {
		return errors.New(errors.ErrCodeSceneNotFound, "scene %q not found", name)
	}
	delete(s.scenes, name)
	return nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	names := make([]string, 0, len(s.scenes))
	for name := range s.scenes {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

// Close implements Store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)

package memory

import (
	"context"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"prod-tracker/internal/model"
)

// Store is an in-process, size bounded department cache. Evicted keys are
// plain misses.
type Store struct {
	cache *lru.Cache[string, model.Dept]
}

// New creates a Store holding at most size departments.
func New(size int) (*Store, error) {
	cache, err := lru.New[string, model.Dept](size)
	if err != nil {
		return nil, fmt.Errorf("memory.New: %w", err)
	}
	return &Store{cache: cache}, nil
}

func (s *Store) Read(ctx context.Context, key string) (model.Dept, bool, error) {
	dept, ok := s.cache.Get(key)
	if !ok {
		return model.Dept{}, false, nil
	}
	dept.Prods = slices.Clone(dept.Prods)
	return dept, true, nil
}

func (s *Store) Write(ctx context.Context, key string, dept model.Dept) error {
	dept.Prods = slices.Clone(dept.Prods)
	s.cache.Add(key, dept)
	return nil
}

// Len returns the number of cached departments.
func (s *Store) Len() int {
	return s.cache.Len()
}

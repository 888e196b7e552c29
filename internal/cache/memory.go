package cache

import (
	"context"
	"sort"
	"sync"

	"biopaxcore/pkg/biopax"
)

// Memory implements Store in process memory. Snapshots are kept in their
// encoded form so every Get returns an independent model.
type Memory struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemory returns an in-memory cache.
func NewMemory() *Memory { return &Memory{snapshots: make(map[string][]byte)} }

func (s *Memory) Driver() Driver { return DriverMemory }

func (s *Memory) Put(_ context.Context, locator string, m *biopax.Model) error {
	snapshot, err := encode(m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshots[locator] = snapshot
	s.mu.Unlock()
	return nil
}

func (s *Memory) Get(_ context.Context, locator string) (*biopax.Model, bool, error) {
	s.mu.RLock()
	snapshot, ok := s.snapshots[locator]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	m, err := decode(locator, snapshot)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (s *Memory) Delete(_ context.Context, locator string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.snapshots[locator]
	delete(s.snapshots, locator)
	return ok, nil
}

func (s *Memory) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.snapshots))
	for k := range s.snapshots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

package deploy

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps deployment history in process memory. Suitable for tests
// and single-process embedding.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Deployment
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Deployment)}
}

func memoryKey(apiID, fingerprint string) string {
	return apiID + "\x00" + fingerprint
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, apiID, fingerprint string) (*Deployment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.records[memoryKey(apiID, fingerprint)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *d
	return &copied, nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, d *Deployment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *d
	s.records[memoryKey(d.APIID, d.Fingerprint)] = &copied
	return nil
}

// List implements Store.
func (s *MemoryStore) List(_ context.Context, apiID string) ([]*Deployment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Deployment
	for _, d := range s.records {
		if d.APIID == apiID {
			copied := *d
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

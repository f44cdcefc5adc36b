package labelstore

import (
	"fmt"

	"github.com/katalvlaran/weakcc/partition"
)

// MemStore keeps the whole label table in memory, one map per group.
// Valid whenever the label population fits in RAM; for larger tables use
// BadgerStore.
type MemStore struct {
	labels map[partition.GroupKey]map[int64]int64
	size   int
	closed bool
}

// NewMemStore returns an empty in-memory label table.
func NewMemStore() *MemStore {
	return &MemStore{labels: make(map[partition.GroupKey]map[int64]int64)}
}

// InitGroup assigns identity labels to ids in group g.
func (s *MemStore) InitGroup(g partition.GroupKey, ids []int64) error {
	if s.closed {
		return ErrClosed
	}
	m, ok := s.labels[g]
	if !ok {
		m = make(map[int64]int64, len(ids))
		s.labels[g] = m
	}
	for _, id := range ids {
		if _, dup := m[id]; !dup {
			s.size++
		}
		m[id] = id
	}
	return nil
}

// ReadBatch copies current labels of ids into out.
func (s *MemStore) ReadBatch(g partition.GroupKey, ids []int64, out map[int64]int64) error {
	if s.closed {
		return ErrClosed
	}
	m := s.labels[g]
	for _, id := range ids {
		label, ok := m[id]
		if !ok {
			return fmt.Errorf("%w: vertex %d in group %q", ErrUnknownVertex, id, g)
		}
		out[id] = label
	}
	return nil
}

// MergeMin lowers labels per the monotonic-min discipline and reports how
// many changed.
func (s *MemStore) MergeMin(g partition.GroupKey, proposals map[int64]int64) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	m := s.labels[g]
	changed := 0
	for id, p := range proposals {
		cur, ok := m[id]
		if !ok {
			return changed, fmt.Errorf("%w: vertex %d in group %q", ErrUnknownVertex, id, g)
		}
		if p < cur {
			m[id] = p
			changed++
		}
	}
	return changed, nil
}

// Scan visits every triple in map order.
func (s *MemStore) Scan(fn func(g partition.GroupKey, vertex, label int64) error) error {
	if s.closed {
		return ErrClosed
	}
	for g, m := range s.labels {
		for id, label := range m {
			if err := fn(g, id, label); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len reports the number of (group, vertex) pairs held.
func (s *MemStore) Len() int { return s.size }

// Close drops the table.
func (s *MemStore) Close() error {
	s.labels = nil
	s.closed = true
	return nil
}

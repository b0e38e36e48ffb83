package quadtree

import "sync"

// SyncTree is a Tree guarded by a single reader/writer lock. Add takes the
// write lock, every read takes the read lock, so any number of queries may
// run alongside each other but never alongside an insertion.
//
// Callbacks passed to Visit or Each run under the read lock and must not
// call Add on the same SyncTree.
type SyncTree[T any] struct {
	mu sync.RWMutex
	t  *Tree[T]
}

// NewSync creates an empty SyncTree covering area, using DefaultOptions.
func NewSync[T any](area Rect) (*SyncTree[T], error) {
	return NewSyncWithOptions[T](area, DefaultOptions())
}

// NewSyncWithOptions creates an empty SyncTree covering area.
func NewSyncWithOptions[T any](area Rect, opts Options) (*SyncTree[T], error) {
	t, err := NewWithOptions[T](area, opts)
	if err != nil {
		return nil, err
	}
	return &SyncTree[T]{t: t}, nil
}

func (s *SyncTree[T]) Add(pos Position, data T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Add(pos, data)
}

// Area never changes, so it needs no lock.
func (s *SyncTree[T]) Area() Rect {
	return s.t.Area()
}

func (s *SyncTree[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Len()
}

func (s *SyncTree[T]) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Depth()
}

func (s *SyncTree[T]) Visit(f VisitFunc[T]) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.t.Visit(f)
}

func (s *SyncTree[T]) Each(f func(e *Entry[T]) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.t.Each(f)
}

func (s *SyncTree[T]) Search(q Rect) []Entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Search(q)
}

func (s *SyncTree[T]) SearchNear(q Rect, margin float64) []Entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.SearchNear(q, margin)
}

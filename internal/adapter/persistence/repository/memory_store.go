package repository

import "sync"

// memoryStore is a mutex-guarded id → value map used by the in-memory
// repositories (STORAGE_DRIVER=memory and tests).
type memoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func newMemoryStore[T any]() *memoryStore[T] {
	return &memoryStore[T]{items: make(map[string]T)}
}

func (s *memoryStore[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

func (s *memoryStore[T]) set(id string, v T) {
	s.mu.Lock()
	s.items[id] = v
	s.mu.Unlock()
}

// insert stores v unless id is taken.
func (s *memoryStore[T]) insert(id string, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = v
	return true
}

// swap replaces the value for id when ok(current) holds.
func (s *memoryStore[T]) swap(id string, v T, ok func(current T, exists bool) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, exists := s.items[id]
	if !ok(cur, exists) {
		return false
	}
	s.items[id] = v
	return true
}

func (s *memoryStore[T]) all(filter func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
		if filter == nil || filter(v) {
			out = append(out, v)
		}
	}
	return out
}

// SPDX-License-Identifier: MIT

// Package matrix: external synchronization helper.
//
// Square itself never locks. Synced is the guard callers put around a
// matrix shared across goroutines: readers take the read lock, writers the
// write lock, and the wrapped value never escapes except through Snapshot.
package matrix

import "sync"

// Synced guards a single *Square with a sync.RWMutex.
type Synced[T Scalar] struct {
	mu sync.RWMutex // guards m
	m  *Square[T]
}

// NewSynced takes ownership of m. A nil m is replaced by an empty matrix.
func NewSynced[T Scalar](m *Square[T]) *Synced[T] {
	if m == nil {
		m = New[T](0)
	}

	return &Synced[T]{m: m}
}

// Read runs fn under the read lock. fn must not mutate or retain m.
func (s *Synced[T]) Read(fn func(m *Square[T])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.m)
}

// Write runs fn under the write lock and returns its error.
func (s *Synced[T]) Write(fn func(m *Square[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.m)
}

// Snapshot returns a deep copy taken under the read lock.
func (s *Synced[T]) Snapshot() *Square[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Clone()
}

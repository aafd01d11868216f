// SPDX-License-Identifier: MIT

// File: registry.go
// Role: node lifecycle, values and child links.
//
// Concurrency:
//   - Every method takes r.mu; readers use RLock.
//
// Determinism:
//   - Children are returned in link order.
package tree

import (
	"fmt"
	"slices"
)

// Add registers a node holding value and returns its ID.
// Complexity: O(1) amortized.
func (r *Registry) Add(value string) NodeID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.nodes[id] = &node{value: value}

	return id
}

// Len returns the number of live nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.nodes)
}

// Value returns the value stored at id.
// Errors: ErrNodeNotFound.
func (r *Registry) Value(id NodeID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.nodes[id]
	if !ok {
		return "", fmt.Errorf("Value(%d): %w", id, ErrNodeNotFound)
	}

	return n.value, nil
}

// SetValue replaces the value stored at id.
// Errors: ErrNodeNotFound.
func (r *Registry) SetValue(id NodeID, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[id]
	if !ok {
		return fmt.Errorf("SetValue(%d): %w", id, ErrNodeNotFound)
	}
	n.value = value

	return nil
}

// Link appends child to parent's children.
// Both nodes must be live at link time. Duplicate links are kept, matching
// append semantics.
// Errors: ErrNodeNotFound for either endpoint.
func (r *Registry) Link(parent, child NodeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.nodes[parent]
	if !ok {
		return fmt.Errorf("Link(%d→%d): parent: %w", parent, child, ErrNodeNotFound)
	}
	if _, ok = r.nodes[child]; !ok {
		return fmt.Errorf("Link(%d→%d): child: %w", parent, child, ErrNodeNotFound)
	}
	p.children = append(p.children, child)

	return nil
}

// Children returns every child ID linked from id, released ones included.
// Errors: ErrNodeNotFound.
func (r *Registry) Children(id NodeID) ([]NodeID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.nodes[id]
	if !ok {
		return nil, fmt.Errorf("Children(%d): %w", id, ErrNodeNotFound)
	}

	return slices.Clone(n.children), nil
}

// LiveChildren returns the child IDs of id that still resolve.
// Errors: ErrNodeNotFound.
func (r *Registry) LiveChildren(id NodeID) ([]NodeID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.nodes[id]
	if !ok {
		return nil, fmt.Errorf("LiveChildren(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]NodeID, 0, len(n.children))
	for _, c := range n.children {
		if _, live := r.nodes[c]; live {
			out = append(out, c)
		}
	}

	return out, nil
}

// Resolve returns the value at id and whether the node is still live.
// It is the lookup half of a non-owning link.
func (r *Registry) Resolve(id NodeID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.nodes[id]
	if !ok {
		return "", false
	}

	return n.value, true
}

// Release drops the node at id. Links pointing at it stay in their parents
// but no longer resolve; its own outgoing links are discarded.
// Errors: ErrNodeNotFound.
func (r *Registry) Release(id NodeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nodes[id]; !ok {
		return fmt.Errorf("Release(%d): %w", id, ErrNodeNotFound)
	}
	delete(r.nodes, id)

	return nil
}

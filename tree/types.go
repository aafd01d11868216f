// SPDX-License-Identifier: MIT

package tree

import (
	"errors"
	"sync"
)

// Sentinel errors for registry operations.
var (
	// ErrNodeNotFound indicates an operation referenced an unknown or released node.
	ErrNodeNotFound = errors.New("tree: node not found")
)

// NodeID identifies a node within its Registry. IDs are never reused.
type NodeID int

// node is the registry-owned record behind a NodeID.
type node struct {
	value    string
	children []NodeID // append-only, may reference released nodes
}

// Registry owns every node and resolves NodeID links.
//
// mu guards nodes and nextID.
type Registry struct {
	mu     sync.RWMutex
	nodes  map[NodeID]*node
	nextID NodeID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[NodeID]*node)}
}

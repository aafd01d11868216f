// Package tree stores value nodes with non-owning links to child nodes.
//
// Nodes are owned by a Registry and addressed by NodeID. A parent keeps the
// IDs of its children, never pointers, so releasing a node cannot leave a
// dangling reference: links to a released node simply stop resolving.
//
// The package tracks values and links only. It performs no traversal,
// serialization or lifecycle management beyond Add, Link and Release.
//
// All Registry methods are safe for concurrent use (guarded by a single
// sync.RWMutex).
package tree

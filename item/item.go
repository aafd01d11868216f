// SPDX-License-Identifier: MIT

package item

import (
	"slices"
	"sort"
)

// Item is a name plus the sorted, de-duplicated names it depends on.
// The zero value is an unnamed item with no dependencies.
type Item struct {
	name      string
	dependsOn []string // sorted ascending, unique
}

// New returns an unnamed item with no dependencies (same as the zero value).
func New() *Item {
	return &Item{}
}

// WithName returns an item with the given name and no dependencies.
func WithName(name string) *Item {
	return &Item{name: name}
}

// WithNameAndDependencies returns an item with the given name and deps.
// deps is copied, sorted and de-duplicated; the caller's slice is not retained.
func WithNameAndDependencies(name string, deps []string) *Item {
	it := &Item{name: name}
	it.AddDependencies(deps)

	return it
}

// Name returns the item's name.
func (it *Item) Name() string { return it.name }

// SetName renames the item.
func (it *Item) SetName(name string) { it.name = name }

// DependsOn returns a copy of the dependency names in ascending order.
func (it *Item) DependsOn() []string {
	return slices.Clone(it.dependsOn)
}

// HasDependency reports whether dep is in the list.
// Complexity: O(log n).
func (it *Item) HasDependency(dep string) bool {
	_, found := slices.BinarySearch(it.dependsOn, dep)
	return found
}

// AddDependency adds dep; adding an existing name is a no-op.
func (it *Item) AddDependency(dep string) {
	it.dependsOn = append(it.dependsOn, dep)
	it.normalize()
}

// AddDependencies adds every name in deps, dropping duplicates.
func (it *Item) AddDependencies(deps []string) {
	it.dependsOn = append(it.dependsOn, deps...)
	it.normalize()
}

// RemoveDependency removes dep if present.
func (it *Item) RemoveDependency(dep string) {
	it.dependsOn = slices.DeleteFunc(it.dependsOn, func(s string) bool { return s == dep })
}

// RemoveDependencies removes every name in deps that is present.
func (it *Item) RemoveDependencies(deps []string) {
	for _, dep := range deps {
		it.RemoveDependency(dep)
	}
}

// ClearDependencies empties the list.
func (it *Item) ClearDependencies() {
	it.dependsOn = it.dependsOn[:0]
}

// SetDependencies replaces the list with deps (sorted, de-duplicated).
func (it *Item) SetDependencies(deps []string) {
	it.ClearDependencies()
	it.AddDependencies(deps)
}

// Clone returns a deep copy.
func (it *Item) Clone() *Item {
	return &Item{name: it.name, dependsOn: slices.Clone(it.dependsOn)}
}

// Equal reports whether a and b share a name and the same dependency set.
func Equal(a, b *Item) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.name == b.name && slices.Equal(a.dependsOn, b.dependsOn)
}

// normalize sorts the list and drops adjacent duplicates.
func (it *Item) normalize() {
	sort.Strings(it.dependsOn)
	it.dependsOn = slices.Compact(it.dependsOn)
}

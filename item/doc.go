// Package item provides Item, a named record with a dependency list.
//
// An Item knows only the names of the things it depends on. The list is
// kept sorted ascending with duplicates removed after every add or set, so
// two items that depend on the same names compare equal regardless of the
// order in which dependencies were added.
//
// There is no graph here: no traversal, no resolution of names to items,
// no cycle detection.
//
// Item is a plain value; it does not lock. Guard it externally when shared.
package item

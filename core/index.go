// Package core: secondary node indices.
//
// The Graph maintains the label index itself; any further keyed index
// (geography by display name, books by title) is owned by the caller and
// must be kept in sync by the caller at every insertion point. Only exact
// keys are supported; callers needing range queries would have to add a
// sorted index as a separate structure.

package core

import "sort"

// Index maps an exact key to the set of nodes registered under it.
// Lookups are O(1) average; results are sorted copies. A node may be
// registered under several keys, and several nodes under one key.
type Index struct {
	byKey map[string]map[string]*Node // key → node ID → node
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{byKey: make(map[string]map[string]*Node)}
}

// Add registers n under key. Re-adding the same node is a no-op, so
// callers may register unconditionally at every insertion point.
// Nil nodes and empty keys are ignored.
// Complexity: O(1) amortized.
func (ix *Index) Add(key string, n *Node) {
	if key == "" || n == nil {
		return
	}
	set, ok := ix.byKey[key]
	if !ok {
		set = make(map[string]*Node)
		ix.byKey[key] = set
	}
	set[n.ID] = n
}

// Get returns the nodes registered under key, sorted by ID. An unknown key
// yields an empty slice, never an error.
// Complexity: O(k log k) for k matches.
func (ix *Index) Get(key string) []*Node {
	set := ix.byKey[key]
	out := make([]*Node, 0, len(set))
	for _, n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Has reports whether any node is registered under key. O(1).
func (ix *Index) Has(key string) bool {
	return len(ix.byKey[key]) > 0
}

// Keys returns all registered keys in sorted order.
// Complexity: O(K log K).
func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.byKey))
	for k := range ix.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

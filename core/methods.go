// Package core: Graph storage operations.
//
// This file provides the creation and lookup operations on the Graph type
// declared in types.go. Every operation is O(1) average via the node map
// and the label index; side effects are strictly additive (appends to
// adjacency lists and index slices only).

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a new node with the given ID and label.
// Returns ErrEmptyNodeID / ErrEmptyLabel on empty input, and
// ErrDuplicateNode if the ID is already present — the collision is a
// reportable conflict, never silently ignored.
// The node is visible under its label immediately on return.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id, label string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if _, exists := g.nodes[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}

	n := &Node{Element: Element{Label: label}, ID: id}
	g.nodes[id] = n
	g.byLabel[label] = append(g.byLabel[label], n)

	return n, nil
}

// AddNodeIfAbsent returns the existing node for id, or creates and indexes
// a new one with the given label. On a hit the label argument is ignored,
// even when it differs from the stored node's label — this is intentional,
// to support merge-style ingestion where several records contribute to one
// node. Returns ErrEmptyNodeID / ErrEmptyLabel on empty input.
// Complexity: O(1) amortized.
func (g *Graph) AddNodeIfAbsent(id, label string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if n, exists := g.nodes[id]; exists {
		return n, nil
	}

	n := &Node{Element: Element{Label: label}, ID: id}
	g.nodes[id] = n
	g.byLabel[label] = append(g.byLabel[label], n)

	return n, nil
}

// AddEdge creates a directional edge with the given label from node fromID
// to node toID, appending it to the source's outgoing list and the
// target's incoming list. Both endpoints must already exist; a missing
// endpoint fails with ErrNodeNotFound. No edge-uniqueness constraint is
// enforced: parallel edges with identical endpoints and label are allowed.
// The returned edge is handed back for further property assignment.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(label, fromID, toID string) (*Edge, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	from, err := g.FindNode(fromID)
	if err != nil {
		return nil, err
	}
	to, err := g.FindNode(toID)
	if err != nil {
		return nil, err
	}

	e := &Edge{Element: Element{Label: label}, From: from, To: to}
	from.out = append(from.out, e)
	to.in = append(to.in, e)
	g.edgeCount++

	return e, nil
}

// Node returns the node with the given ID and whether it exists.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// FindNode returns the node with the given ID, failing with
// ErrNodeNotFound (or ErrEmptyNodeID) when the lookup misses.
// Complexity: O(1).
func (g *Graph) FindNode(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n, nil
}

// NodesByLabel returns the nodes carrying label, sorted by ID for
// reproducible ordering. An unknown label yields an empty slice, never an
// error. Complexity: O(k log k) for k matches.
func (g *Graph) NodesByLabel(label string) []*Node {
	stored := g.byLabel[label]
	out := make([]*Node, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns the total number of nodes. O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// NodeIDs returns all node IDs in sorted order.
// Complexity: O(N log N).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

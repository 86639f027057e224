// Package core declares the Node, Edge, and Graph types, the sentinel
// errors of the storage layer, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrEmptyLabel      - label is the empty string.
//	ErrDuplicateNode   - strict creation with an ID already present.
//	ErrNodeNotFound    - lookup or edge endpoint referenced an unknown ID.
//	ErrPropertyMissing - typed read of an absent property key.
//	ErrPropertyType    - typed read with the wrong assumed kind.

package core

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyLabel indicates that the provided label is empty.
	ErrEmptyLabel = errors.New("core: label is empty")

	// ErrDuplicateNode indicates a strict AddNode collided on an existing ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrPropertyMissing indicates a typed read of an absent property key.
	ErrPropertyMissing = errors.New("core: property missing")

	// ErrPropertyType indicates a typed read with the wrong assumed kind.
	ErrPropertyType = errors.New("core: property type mismatch")
)

// Node is a labelled element with a globally unique ID and two append-only
// adjacency lists. Identity and equality are defined solely by ID.
type Node struct {
	Element

	// ID uniquely identifies this node within its Graph.
	ID string

	out []*Edge // edges where this node is the source, in creation order
	in  []*Edge // edges where this node is the target, in creation order
}

// String renders the node for diagnostics.
func (n *Node) String() string {
	return fmt.Sprintf("Node{label: %s, id: %s}", n.Label, n.ID)
}

// OutgoingEdges returns a snapshot of the node's outgoing adjacency list
// in creation order.
func (n *Node) OutgoingEdges() []*Edge {
	out := make([]*Edge, len(n.out))
	copy(out, n.out)

	return out
}

// IncomingEdges returns a snapshot of the node's incoming adjacency list
// in creation order.
func (n *Node) IncomingEdges() []*Edge {
	in := make([]*Edge, len(n.in))
	copy(in, n.in)

	return in
}

// Outgoing yields the node's outgoing edges carrying label, lazily and in
// creation order. Cost is proportional to the edges actually visited.
func (n *Node) Outgoing(label string) iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		for _, e := range n.out {
			if e.Label != label {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Incoming yields the node's incoming edges carrying label, lazily and in
// creation order.
func (n *Node) Incoming(label string) iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		for _, e := range n.in {
			if e.Label != label {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Edge is a directional, labelled connection between two existing nodes.
// It appears in exactly one node's outgoing list (From) and exactly one
// node's incoming list (To). Edges carry no independent ID; duplicates with
// identical endpoints and label are permitted.
type Edge struct {
	Element

	// From is the source node.
	From *Node

	// To is the target node.
	To *Node
}

// String renders the edge for diagnostics.
func (e *Edge) String() string {
	return fmt.Sprintf("Edge{%s -[%s]-> %s}", e.From.ID, e.Label, e.To.ID)
}

// Graph is the in-memory property graph store. It owns all nodes and
// edges, enforces node-ID uniqueness, and keeps the label index consistent
// with storage at every insertion. All mutation is strictly additive.
type Graph struct {
	nodes     map[string]*Node   // node ID → node
	byLabel   map[string][]*Node // label → nodes, in creation order
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		byLabel: make(map[string][]*Node),
	}
}

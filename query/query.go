// Package query: entry points and the Nodes / Relationships sets.

package query

import (
	"errors"
	"iter"
	"slices"

	"github.com/albertoventurini/graph-book-reviews/core"
)

// Query issues traversals against a completed graph.
type Query struct {
	g *core.Graph
}

// New returns a Query over g. The graph is expected to be fully
// constructed; the query layer never mutates it.
func New(g *core.Graph) *Query {
	return &Query{g: g}
}

// Match starts from the node with the given ID. An unknown ID yields an
// empty set, never a failure; callers needing a strict lookup should use
// core.Graph.FindNode before building the chain.
func (q *Query) Match(id string) Nodes {
	n, ok := q.g.Node(id)
	if !ok {
		return Nodes{}
	}

	return NodesOf(n)
}

// WithLabel starts from all nodes carrying label, in ID order.
func (q *Query) WithLabel(label string) Nodes {
	return NewNodes(slices.Values(q.g.NodesByLabel(label)))
}

// Nodes is a lazily evaluated set of nodes.
// The zero Nodes is a valid empty set.
type Nodes struct {
	seq iter.Seq[*core.Node]
}

// NewNodes wraps a node sequence as a traversable set.
func NewNodes(seq iter.Seq[*core.Node]) Nodes {
	return Nodes{seq: seq}
}

// NodesOf builds a set from an explicit list of nodes.
func NodesOf(nodes ...*core.Node) Nodes {
	return NewNodes(slices.Values(nodes))
}

// Seq exposes the underlying sequence for range-over-func consumption.
func (ns Nodes) Seq() iter.Seq[*core.Node] {
	if ns.seq == nil {
		return func(func(*core.Node) bool) {}
	}

	return ns.seq
}

// Out follows each node's outgoing edges carrying label, yielding the
// matching edges as a relationship set.
func (ns Nodes) Out(label string) Relationships {
	src := ns.Seq()

	return NewRelationships(func(yield func(*core.Edge) bool) {
		for n := range src {
			for e := range n.Outgoing(label) {
				if !yield(e) {
					return
				}
			}
		}
	})
}

// In follows each node's incoming edges carrying label, yielding the
// matching edges as a relationship set.
func (ns Nodes) In(label string) Relationships {
	src := ns.Seq()

	return NewRelationships(func(yield func(*core.Edge) bool) {
		for n := range src {
			for e := range n.Incoming(label) {
				if !yield(e) {
					return
				}
			}
		}
	})
}

// Where keeps the nodes for which pred returns true.
func (ns Nodes) Where(pred func(*core.Node) bool) Nodes {
	src := ns.Seq()

	return NewNodes(func(yield func(*core.Node) bool) {
		for n := range src {
			if !pred(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	})
}

// WhereProperty keeps the nodes whose property bag holds key and for whose
// value pred returns true. Nodes lacking the key are dropped, mirroring a
// missing-data filter rather than a typed read.
func (ns Nodes) WhereProperty(key string, pred func(core.Value) bool) Nodes {
	return ns.Where(func(n *core.Node) bool {
		v, ok := n.Property(key)
		return ok && pred(v)
	})
}

// Distinct drops nodes already seen earlier in the sequence, by ID.
// Memory grows with the number of distinct nodes yielded.
func (ns Nodes) Distinct() Nodes {
	src := ns.Seq()

	return NewNodes(func(yield func(*core.Node) bool) {
		seen := make(map[string]struct{})
		for n := range src {
			if _, dup := seen[n.ID]; dup {
				continue
			}
			seen[n.ID] = struct{}{}
			if !yield(n) {
				return
			}
		}
	})
}

// Collect materializes the set into a slice, preserving traversal order.
func (ns Nodes) Collect() []*core.Node {
	var out []*core.Node
	for n := range ns.Seq() {
		out = append(out, n)
	}

	return out
}

// Count consumes the set and returns its size.
func (ns Nodes) Count() int {
	count := 0
	for range ns.Seq() {
		count++
	}

	return count
}

// AverageProperty consumes the set and returns the arithmetic mean of the
// named numeric property. Nodes missing the key are skipped; if no node
// contributes, the defined result is 0.0 — an explicit default, not a
// failure. A wrong-kind value propagates ErrPropertyType.
func (ns Nodes) AverageProperty(key string) (float64, error) {
	var sum float64
	count := 0
	for n := range ns.Seq() {
		f, err := n.NumericProperty(key)
		if errors.Is(err, core.ErrPropertyMissing) {
			continue
		}
		if err != nil {
			return 0, err
		}
		sum += f
		count++
	}
	if count == 0 {
		return 0.0, nil
	}

	return sum / float64(count), nil
}

// Relationships is a lazily evaluated set of edges produced by a
// directional traversal step. The zero Relationships is a valid empty set.
type Relationships struct {
	seq iter.Seq[*core.Edge]
}

// NewRelationships wraps an edge sequence as a traversable set.
func NewRelationships(seq iter.Seq[*core.Edge]) Relationships {
	return Relationships{seq: seq}
}

// Seq exposes the underlying sequence for range-over-func consumption.
func (rs Relationships) Seq() iter.Seq[*core.Edge] {
	if rs.seq == nil {
		return func(func(*core.Edge) bool) {}
	}

	return rs.seq
}

// ToNodes projects each edge to its target node. When labels are given,
// only targets carrying one of them are kept.
func (rs Relationships) ToNodes(labels ...string) Nodes {
	src := rs.Seq()

	return NewNodes(func(yield func(*core.Node) bool) {
		for e := range src {
			if !matchesLabel(e.To, labels) {
				continue
			}
			if !yield(e.To) {
				return
			}
		}
	})
}

// FromNodes projects each edge to its source node. When labels are given,
// only sources carrying one of them are kept.
func (rs Relationships) FromNodes(labels ...string) Nodes {
	src := rs.Seq()

	return NewNodes(func(yield func(*core.Node) bool) {
		for e := range src {
			if !matchesLabel(e.From, labels) {
				continue
			}
			if !yield(e.From) {
				return
			}
		}
	})
}

// Where keeps the edges for which pred returns true.
func (rs Relationships) Where(pred func(*core.Edge) bool) Relationships {
	src := rs.Seq()

	return NewRelationships(func(yield func(*core.Edge) bool) {
		for e := range src {
			if !pred(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	})
}

// Collect materializes the set into a slice, preserving traversal order.
func (rs Relationships) Collect() []*core.Edge {
	var out []*core.Edge
	for e := range rs.Seq() {
		out = append(out, e)
	}

	return out
}

// Count consumes the set and returns its size.
func (rs Relationships) Count() int {
	count := 0
	for range rs.Seq() {
		count++
	}

	return count
}

// AverageProperty consumes the set and returns the arithmetic mean of the
// named numeric property across all edges. An empty set yields 0.0 — an
// explicit default, not a failure. A missing key or wrong-kind value on
// any visited edge propagates ErrPropertyMissing / ErrPropertyType: edges
// are expected to carry the property they were created with.
func (rs Relationships) AverageProperty(key string) (float64, error) {
	var sum float64
	count := 0
	for e := range rs.Seq() {
		f, err := e.NumericProperty(key)
		if err != nil {
			return 0, err
		}
		sum += f
		count++
	}
	if count == 0 {
		return 0.0, nil
	}

	return sum / float64(count), nil
}

// matchesLabel reports whether n carries one of the wanted labels.
// An empty filter matches every node.
func matchesLabel(n *core.Node, labels []string) bool {
	if len(labels) == 0 {
		return true
	}
	for _, l := range labels {
		if n.Label == l {
			return true
		}
	}

	return false
}

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albertoventurini/graph-book-reviews/core"
)

// TestGraph_AddNode locks in the strict creation contract: the node is
// stored, retrievable by ID, and visible under its label immediately.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	n, err := g.AddNode("b1", "book")
	require.NoError(t, err)
	require.Equal(t, "b1", n.ID)
	require.Equal(t, "book", n.Label)

	got, ok := g.Node("b1")
	require.True(t, ok)
	require.Same(t, n, got, "Node(id) must return the stored node")

	byLabel := g.NodesByLabel("book")
	require.Len(t, byLabel, 1)
	require.Same(t, n, byLabel[0], "node must be indexed under its label on creation")

	require.Equal(t, 1, g.NodeCount())
}

// TestGraph_AddNode_Duplicate verifies an ID collision on the strict path
// always fails with ErrDuplicateNode and leaves storage untouched.
func TestGraph_AddNode_Duplicate(t *testing.T) {
	g := core.NewGraph()
	first, err := g.AddNode("b1", "book")
	require.NoError(t, err)

	_, err = g.AddNode("b1", "book")
	require.ErrorIs(t, err, core.ErrDuplicateNode)
	// Same ID under a different label is still a collision.
	_, err = g.AddNode("b1", "author")
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	require.Equal(t, 1, g.NodeCount())
	got, _ := g.Node("b1")
	require.Same(t, first, got)
}

// TestGraph_AddNode_InputGuards rejects empty IDs and labels.
func TestGraph_AddNode_InputGuards(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("", "book")
	require.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = g.AddNode("b1", "")
	require.ErrorIs(t, err, core.ErrEmptyLabel)
	_, err = g.AddNodeIfAbsent("", "book")
	require.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = g.AddNodeIfAbsent("b1", "")
	require.ErrorIs(t, err, core.ErrEmptyLabel)
}

// TestGraph_AddNodeIfAbsent verifies the idempotent path returns the
// original node unchanged, ignoring a possibly different label argument.
func TestGraph_AddNodeIfAbsent(t *testing.T) {
	g := core.NewGraph()

	first, err := g.AddNodeIfAbsent("pub1", "publisher")
	require.NoError(t, err)

	again, err := g.AddNodeIfAbsent("pub1", "publisher")
	require.NoError(t, err)
	require.Same(t, first, again)

	// Merge-style ingestion: a differing label on a hit is ignored.
	merged, err := g.AddNodeIfAbsent("pub1", "author")
	require.NoError(t, err)
	require.Same(t, first, merged)
	require.Equal(t, "publisher", merged.Label)

	require.Equal(t, 1, g.NodeCount())
	require.Len(t, g.NodesByLabel("publisher"), 1)
	require.Empty(t, g.NodesByLabel("author"))
}

// TestGraph_AddEdge verifies the edge lands exactly once in the source's
// outgoing list and exactly once in the target's incoming list.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()
	book, _ := g.AddNode("b1", "book")
	author, _ := g.AddNode("a1", "author")

	e, err := g.AddEdge("writtenBy", "b1", "a1")
	require.NoError(t, err)
	require.Equal(t, "writtenBy", e.Label)
	require.Same(t, book, e.From)
	require.Same(t, author, e.To)

	require.Equal(t, []*core.Edge{e}, book.OutgoingEdges())
	require.Empty(t, book.IncomingEdges())
	require.Equal(t, []*core.Edge{e}, author.IncomingEdges())
	require.Empty(t, author.OutgoingEdges())

	require.Equal(t, 1, g.EdgeCount())
}

// TestGraph_AddEdge_MissingEndpoint verifies a dangling endpoint reference
// is a lookup failure and creates nothing.
func TestGraph_AddEdge_MissingEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("b1", "book")

	_, err := g.AddEdge("writtenBy", "b1", "ghost")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.AddEdge("writtenBy", "ghost", "b1")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.AddEdge("", "b1", "b1")
	require.ErrorIs(t, err, core.ErrEmptyLabel)

	require.Equal(t, 0, g.EdgeCount())
	n, _ := g.Node("b1")
	require.Empty(t, n.OutgoingEdges())
	require.Empty(t, n.IncomingEdges())
}

// TestGraph_AddEdge_ParallelAllowed verifies there is no edge-uniqueness
// constraint: identical endpoints and label may repeat.
func TestGraph_AddEdge_ParallelAllowed(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("u1", "user")
	_, _ = g.AddNode("b1", "book")

	e1, err := g.AddEdge("reviewed", "u1", "b1")
	require.NoError(t, err)
	e2, err := g.AddEdge("reviewed", "u1", "b1")
	require.NoError(t, err)
	require.NotSame(t, e1, e2)

	u, _ := g.Node("u1")
	require.Len(t, u.OutgoingEdges(), 2)
	require.Equal(t, 2, g.EdgeCount())
}

// TestGraph_FindNode covers the strict and soft lookup variants.
func TestGraph_FindNode(t *testing.T) {
	g := core.NewGraph()
	n, _ := g.AddNode("b1", "book")

	found, err := g.FindNode("b1")
	require.NoError(t, err)
	require.Same(t, n, found)

	_, err = g.FindNode("ghost")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.FindNode("")
	require.ErrorIs(t, err, core.ErrEmptyNodeID)

	_, ok := g.Node("ghost")
	require.False(t, ok)
	require.False(t, g.HasNode("ghost"))
	require.True(t, g.HasNode("b1"))
}

// TestGraph_NodesByLabel verifies the label index returns sorted results
// and that unknown labels yield an empty slice, never a failure.
func TestGraph_NodesByLabel(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("b2", "book")
	_, _ = g.AddNode("b1", "book")
	_, _ = g.AddNode("a1", "author")

	books := g.NodesByLabel("book")
	require.Len(t, books, 2)
	require.Equal(t, "b1", books[0].ID)
	require.Equal(t, "b2", books[1].ID)

	require.Empty(t, g.NodesByLabel("publisher"))
	require.Equal(t, []string{"a1", "b1", "b2"}, g.NodeIDs())
}

// TestNode_DirectionalFilters verifies Outgoing/Incoming yield only edges
// carrying the requested label, in creation order.
func TestNode_DirectionalFilters(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("b1", "book")
	_, _ = g.AddNode("a1", "author")
	_, _ = g.AddNode("p1", "publisher")

	written, _ := g.AddEdge("writtenBy", "b1", "a1")
	published, _ := g.AddEdge("publishedBy", "b1", "p1")

	b, _ := g.Node("b1")
	var got []*core.Edge
	for e := range b.Outgoing("writtenBy") {
		got = append(got, e)
	}
	require.Equal(t, []*core.Edge{written}, got)

	got = got[:0]
	for e := range b.Outgoing("publishedBy") {
		got = append(got, e)
	}
	require.Equal(t, []*core.Edge{published}, got)

	a, _ := g.Node("a1")
	got = got[:0]
	for e := range a.Incoming("writtenBy") {
		got = append(got, e)
	}
	require.Equal(t, []*core.Edge{written}, got)

	// No matches flow through as an empty sequence.
	for range a.Incoming("reviewed") {
		t.Fatal("unexpected edge for unknown label")
	}
}

// TestIndex covers the caller-maintained secondary index contract.
func TestIndex(t *testing.T) {
	g := core.NewGraph()
	turin, _ := g.AddNode("turin:piedmont:italy", "city")
	milan, _ := g.AddNode("milan:lombardy:italy", "city")

	ix := core.NewIndex()
	ix.Add("turin", turin)
	ix.Add("turin", turin) // re-adding is a no-op
	ix.Add("milan", milan)
	// Empty keys and nil nodes are ignored.
	ix.Add("", turin)
	ix.Add("x", nil)

	require.Equal(t, []*core.Node{turin}, ix.Get("turin"))
	require.Empty(t, ix.Get("rome"), "unknown key must yield an empty slice")
	require.True(t, ix.Has("milan"))
	require.False(t, ix.Has("rome"))
	require.Equal(t, []string{"milan", "turin"}, ix.Keys())
}

// Package query provides a lazy, composable traversal algebra over a
// core.Graph, mirroring a small domain-specific query language rather than
// imperative loops.
//
// What
//
//   - Query: entry points producing a starting node set, either by ID
//     (Match) or by label (WithLabel).
//   - Nodes: an intermediate node set. Out/In follow edges carrying a
//     label in the chosen direction and yield a Relationships set;
//     Where/WhereProperty filter by arbitrary predicates.
//   - Relationships: an intermediate edge set produced by a directional
//     step. ToNodes/FromNodes project back to the edges' targets or
//     sources, optionally filtered to nodes carrying a label.
//   - Terminals: Collect, Count, and AverageProperty consume a set and
//     materialize a result.
//
// Multi-hop path queries compose left-to-right without intermediate
// naming:
//
//	titles := query.New(g).
//	    WithLabel("state").
//	    In("inState").FromNodes().
//	    In("inCity").FromNodes().
//	    Out("reviewed").ToNodes().
//	    Collect()
//
// Laziness
//
//	Every step is a sequence transformation over iter.Seq; no intermediate
//	collection is materialized until the terminal operation runs, so total
//	traversal cost stays proportional to the number of edges actually
//	visited. Treat a set as single-use: compose the whole chain, then
//	consume it exactly once.
//
// Empty inputs flow through as empty outputs, never failures — a traversal
// fails only when a typed property read inside a terminal fails, or when
// the caller's strict starting-node lookup (core.Graph.FindNode) fails
// before the chain is built.
//
// Complexity: O(visited nodes + visited edges) per consumed chain.
package query

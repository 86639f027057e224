// Package core provides an in-memory, labelled property graph:
// nodes and edges carrying a string label and a bag of typed properties,
// with label- and key-based indices for constant-time average lookup.
//
// What
//
//   - Node: globally unique string ID, label, property bag, and two
//     append-only adjacency lists (outgoing and incoming edges).
//   - Edge: directional connection between two existing nodes, with its own
//     label and property bag. Edges have no independent identity; parallel
//     edges with identical endpoints and label are permitted.
//   - Graph: owns all nodes and edges, enforces ID uniqueness, and keeps a
//     label index consistent with storage at every insertion.
//   - Value: a closed sum type over the supported property scalars
//     (string, int64, float64) with typed accessors that fail explicitly
//     on a missing key or a wrong-kind read — never a silent default.
//   - Index: a secondary key→node-set index populated explicitly by
//     callers alongside node creation (e.g. geography by display name).
//
// Lifecycle
//
//	The graph is a build-once/query-many structure. All mutation is
//	strictly additive: nodes and edges are never removed, adjacency lists
//	only grow, and the only post-construction mutation is updating a
//	property bag. There is no locking; construction is single-threaded and
//	concurrent readers are safe only once construction has finished.
//
// Complexity (N = |nodes|, per operation)
//
//   - AddNode / AddNodeIfAbsent / AddEdge / Node / FindNode: O(1) average.
//   - NodesByLabel / Index.Get: O(k log k) for k matches (sorted copy).
//
// Errors
//
//   - ErrEmptyNodeID / ErrEmptyLabel — input guards on creation.
//   - ErrDuplicateNode — strict AddNode with an ID already present.
//   - ErrNodeNotFound — FindNode or an AddEdge endpoint referencing an
//     unknown ID.
//   - ErrPropertyMissing / ErrPropertyType — typed property reads.
package core

// Package bookgraph is an in-memory, labelled property graph store with a
// small traversal-query layer, applied to a book-review dataset (books,
// authors, publishers, users, and their geographic/review relationships).
//
// The module is organized into four packages plus a command-line driver:
//
//	core/        — Graph, Node, Edge, property Values, label & secondary indices
//	query/       — lazy, composable traversal algebra (Nodes / Relationships)
//	bookreviews/ — domain graph construction and aggregation queries
//	ingest/      — BX-dataset CSV ingestion (semicolon-separated, ISO-8859-1)
//	cmd/bookreviews — CLI driver that loads the dataset and prints reports
//
// The graph is a build-once/query-many, append-only structure: nodes and
// edges are created once during ingestion and never deleted; properties may
// still be updated afterwards. Construction is single-threaded and the core
// provides no locking; concurrent readers are safe only once construction
// has finished.
//
// Quick example:
//
//	g := core.NewGraph()
//	book, _ := g.AddNode("isbn-1", "book")
//	book.SetProperty("title", core.String("Dracula"))
//	author, _ := g.AddNodeIfAbsent("Bram Stoker", "author")
//	_, _ = g.AddEdge("writtenBy", book.ID, author.ID)
//
//	q := query.New(g)
//	names := q.WithLabel("book").Out("writtenBy").ToNodes().Collect()
package bookgraph

// Package bookreviews models the BX book-review corpus as a labelled
// property graph and answers the domain questions over it.
//
// Nodes: book, author, publisher, user, city, state, country.
// Edges: book -publishedBy-> publisher (year), book -writtenBy-> author,
// user -reviewed-> book (rating), user -inCity-> city -inState-> state
// -inCountry-> country.
//
// Construction order follows the corpus: books first (with publisher and
// author nodes derived from each book record), then users with their
// location hierarchy, then review edges — skipped when either endpoint is
// missing from the graph, since ratings may reference unknown users or
// books.
//
// Alongside the core label index, the Graph maintains caller-owned
// secondary indices by display name for countries, states, and cities, and
// by title for books, registered at every insertion point. The title index
// turns the average-reviewer-age query into an O(1) average lookup plus a
// scan of the matching books' incoming reviews.
package bookreviews

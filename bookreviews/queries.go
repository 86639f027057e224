// Package bookreviews: aggregation queries composed from the traversal
// primitives.

package bookreviews

import (
	"slices"
	"sort"

	"github.com/albertoventurini/graph-book-reviews/query"
)

// AuthorReviews pairs an author name with the number of reviews its books
// received.
type AuthorReviews struct {
	Name    string
	Reviews int
}

// AuthorRating pairs an author name with the average rating of its books'
// reviews.
type AuthorRating struct {
	Name   string
	Rating float64
}

// AuthorsByReviewCount lists every author with the total number of reviews
// across all of its books, sorted by count descending (name ascending on
// ties, for reproducible output). Authors with no reviewed books appear
// with a count of 0.
func AuthorsByReviewCount(g *Graph) ([]AuthorReviews, error) {
	authors := g.NodesByLabel(NodeAuthor)
	out := make([]AuthorReviews, 0, len(authors))
	for _, a := range authors {
		name, err := a.StringProperty(PropName)
		if err != nil {
			return nil, err
		}
		reviews := query.NodesOf(a).
			In(EdgeWrittenBy).FromNodes().
			In(EdgeReviewed).
			Count()
		out = append(out, AuthorReviews{Name: name, Reviews: reviews})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Reviews != out[j].Reviews {
			return out[i].Reviews > out[j].Reviews
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

// AverageRatingByAuthor returns the arithmetic mean rating across all
// reviews of the author's books. An author with zero ratings yields 0.0 —
// an explicit default, not a failure. An unknown author ID fails with
// core.ErrNodeNotFound.
func AverageRatingByAuthor(g *Graph, author string) (float64, error) {
	a, err := g.FindNode(author)
	if err != nil {
		return 0, err
	}

	return query.NodesOf(a).
		In(EdgeWrittenBy).FromNodes().
		In(EdgeReviewed).
		AverageProperty(PropRating)
}

// AuthorsByAverageRating lists every author with its average rating,
// sorted by rating descending (name ascending on ties). Authors with no
// ratings carry 0.0, consistently with AverageRatingByAuthor.
func AuthorsByAverageRating(g *Graph) ([]AuthorRating, error) {
	authors := g.NodesByLabel(NodeAuthor)
	out := make([]AuthorRating, 0, len(authors))
	for _, a := range authors {
		name, err := a.StringProperty(PropName)
		if err != nil {
			return nil, err
		}
		rating, err := query.NodesOf(a).
			In(EdgeWrittenBy).FromNodes().
			In(EdgeReviewed).
			AverageProperty(PropRating)
		if err != nil {
			return nil, err
		}
		out = append(out, AuthorRating{Name: name, Rating: rating})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

// BooksReviewedInState returns the deduplicated, sorted titles of books
// reviewed by users living in the named state. An unknown state yields an
// empty result, never a failure.
func BooksReviewedInState(g *Graph, state string) ([]string, error) {
	books := query.NewNodes(slices.Values(g.States.Get(state))).
		In(EdgeInState).FromNodes().
		In(EdgeInCity).FromNodes().
		Out(EdgeReviewed).ToNodes()

	return collectTitles(books)
}

// BooksReviewedInCountry returns the deduplicated, sorted titles of books
// reviewed by users living in the named country. An unknown country yields
// an empty result, never a failure.
func BooksReviewedInCountry(g *Graph, country string) ([]string, error) {
	books := query.NewNodes(slices.Values(g.Countries.Get(country))).
		In(EdgeInCountry).FromNodes().
		In(EdgeInState).FromNodes().
		In(EdgeInCity).FromNodes().
		Out(EdgeReviewed).ToNodes()

	return collectTitles(books)
}

// AverageAgeByTitle returns the mean age of the reviewers of all books
// carrying the given title, via the title index. Reviewers without a known
// age are skipped; if none contributes, the result is 0.0. A user who
// reviewed several matching books counts once per review.
func AverageAgeByTitle(g *Graph, title string) (float64, error) {
	return query.NewNodes(slices.Values(g.Titles.Get(title))).
		In(EdgeReviewed).FromNodes().
		AverageProperty(PropAge)
}

// collectTitles consumes a book node set into a deduplicated, sorted title
// list.
func collectTitles(books query.Nodes) ([]string, error) {
	seen := make(map[string]struct{})
	for b := range books.Seq() {
		title, err := b.StringProperty(PropTitle)
		if err != nil {
			return nil, err
		}
		seen[title] = struct{}{}
	}

	titles := make([]string, 0, len(seen))
	for t := range seen {
		titles = append(titles, t)
	}
	sort.Strings(titles)

	return titles, nil
}

// TopN trims a ranked report slice to at most n entries without copying.
func TopN[T AuthorReviews | AuthorRating](ranked []T, n int) []T {
	if n < 0 || n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n]
}

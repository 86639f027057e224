// Package bookreviews: graph construction from a parsed dataset.

package bookreviews

import (
	"strings"

	"github.com/albertoventurini/graph-book-reviews/core"
	"github.com/albertoventurini/graph-book-reviews/ingest"
)

// Graph is the book-review property graph: the core store plus the
// domain's secondary indices, kept in sync at every insertion point.
type Graph struct {
	*core.Graph

	// Countries, States, and Cities index geography nodes by display name
	// (a name may map to several nodes, e.g. "springfield" in two states).
	Countries *core.Index
	States    *core.Index
	Cities    *core.Index

	// Titles indexes book nodes by title; several ISBNs may share one.
	Titles *core.Index
}

// NewGraph builds the graph from a parsed dataset, in corpus order:
// books (with derived publishers and authors), users (with their location
// hierarchy), then review edges. A duplicate book ISBN or user ID is a
// creation-time conflict and fails construction; a rating referencing an
// unknown user or book is skipped.
func NewGraph(ds *ingest.Dataset) (*Graph, error) {
	g := &Graph{
		Graph:     core.NewGraph(),
		Countries: core.NewIndex(),
		States:    core.NewIndex(),
		Cities:    core.NewIndex(),
		Titles:    core.NewIndex(),
	}

	for _, b := range ds.Books {
		if err := g.addBook(b); err != nil {
			return nil, err
		}
	}
	for _, u := range ds.Users {
		if err := g.addUser(u); err != nil {
			return nil, err
		}
	}
	for _, r := range ds.Ratings {
		if err := g.addRating(r); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// addBook creates the book node plus its publisher and author, merging the
// latter two across records.
func (g *Graph) addBook(b ingest.Book) error {
	book, err := g.AddNode(b.ISBN, NodeBook)
	if err != nil {
		return err
	}
	book.SetProperty(PropISBN, core.String(b.ISBN))
	book.SetProperty(PropTitle, core.String(b.Title))
	g.Titles.Add(b.Title, book)

	// Corpus records with a blank publisher or author contribute no node.
	if b.Publisher != "" {
		if _, err = g.AddNodeIfAbsent(b.Publisher, NodePublisher); err != nil {
			return err
		}
		published, err := g.AddEdge(EdgePublishedBy, b.ISBN, b.Publisher)
		if err != nil {
			return err
		}
		published.SetProperty(PropYear, core.Int(int64(b.Year)))
	}

	if b.Author != "" {
		author, err := g.AddNodeIfAbsent(b.Author, NodeAuthor)
		if err != nil {
			return err
		}
		author.SetProperty(PropName, core.String(b.Author))
		if _, err = g.AddEdge(EdgeWrittenBy, b.ISBN, b.Author); err != nil {
			return err
		}
	}

	return nil
}

// addUser creates the user node, its known age, and its location
// hierarchy.
func (g *Graph) addUser(u ingest.User) error {
	id := UserID(u.ID)
	user, err := g.AddNode(id, NodeUser)
	if err != nil {
		return err
	}
	if u.Age != nil {
		user.SetProperty(PropAge, core.Int(int64(*u.Age)))
	}

	tokens := splitLocation(u.Location)
	if err = g.addLocationNodes(tokens); err != nil {
		return err
	}
	if cid, ok := cityID(tokens); ok {
		if _, err = g.AddEdge(EdgeInCity, id, cid); err != nil {
			return err
		}
	}

	return nil
}

// addRating creates the review edge, skipping ratings whose user or book
// is missing from the corpus.
func (g *Graph) addRating(r ingest.Rating) error {
	userID := UserID(r.UserID)
	if !g.HasNode(userID) || !g.HasNode(r.ISBN) {
		return nil
	}
	reviewed, err := g.AddEdge(EdgeReviewed, userID, r.ISBN)
	if err != nil {
		return err
	}
	reviewed.SetProperty(PropRating, core.Int(int64(r.Rating)))

	return nil
}

// addLocationNodes creates the country, state, and city nodes the location
// tokens describe, registering each in its by-name index and linking
// city -inState-> state -inCountry-> country. Creation is if-absent:
// hierarchy edges are added only when the child node is new.
func (g *Graph) addLocationNodes(tokens []string) error {
	if id, ok := countryID(tokens); ok && !g.HasNode(id) {
		country, err := g.AddNode(id, NodeCountry)
		if err != nil {
			return err
		}
		country.SetProperty(PropName, core.String(tokens[2]))
		g.Countries.Add(tokens[2], country)
	}

	if id, ok := stateID(tokens); ok && !g.HasNode(id) {
		state, err := g.AddNode(id, NodeState)
		if err != nil {
			return err
		}
		state.SetProperty(PropName, core.String(tokens[1]))
		g.States.Add(tokens[1], state)

		if parent, ok := countryID(tokens); ok {
			if _, err = g.AddEdge(EdgeInCountry, id, parent); err != nil {
				return err
			}
		}
	}

	if id, ok := cityID(tokens); ok && !g.HasNode(id) {
		city, err := g.AddNode(id, NodeCity)
		if err != nil {
			return err
		}
		city.SetProperty(PropName, core.String(tokens[0]))
		g.Cities.Add(tokens[0], city)

		if parent, ok := stateID(tokens); ok {
			if _, err = g.AddEdge(EdgeInState, id, parent); err != nil {
				return err
			}
		}
	}

	return nil
}

// splitLocation tokenizes a corpus location ("city, state, country") into
// trimmed tokens.
func splitLocation(location string) []string {
	parts := strings.Split(location, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}

	return tokens
}

// cityID builds the city node ID by joining all location tokens. A record
// with no usable tokens has no city.
func cityID(tokens []string) (string, bool) {
	if len(tokens) == 0 || strings.Join(tokens, "") == "" {
		return "", false
	}

	return strings.Join(tokens, ":"), true
}

// stateID builds the state node ID ("state:country"). Only full
// three-token locations with a meaningful state qualify; the corpus marks
// unknown states as "n/a".
func stateID(tokens []string) (string, bool) {
	if len(tokens) != 3 || tokens[1] == "" || tokens[1] == "n/a" {
		return "", false
	}

	return tokens[1] + ":" + tokens[2], true
}

// countryID builds the country node ID (the country token itself). Only
// full three-token locations qualify.
func countryID(tokens []string) (string, bool) {
	if len(tokens) != 3 || tokens[2] == "" {
		return "", false
	}

	return tokens[2], true
}

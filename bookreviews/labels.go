// Package bookreviews: node labels, edge labels, and property keys of the
// book-review graph.

package bookreviews

// Node labels.
const (
	NodeBook      = "book"
	NodeUser      = "user"
	NodePublisher = "publisher"
	NodeAuthor    = "author"
	NodeCity      = "city"
	NodeState     = "state"
	NodeCountry   = "country"
)

// Edge labels.
const (
	EdgePublishedBy = "publishedBy"
	EdgeWrittenBy   = "writtenBy"
	EdgeInCity      = "inCity"
	EdgeInState     = "inState"
	EdgeInCountry   = "inCountry"
	EdgeReviewed    = "reviewed"
)

// Property keys.
const (
	PropISBN   = "isbn"
	PropTitle  = "title"
	PropName   = "name"
	PropYear   = "year"
	PropAge    = "age"
	PropRating = "rating"
)

// userIDPrefix namespaces user node IDs away from ISBNs and names.
const userIDPrefix = "user:"

// UserID returns the node ID for a corpus user ID.
func UserID(id string) string { return userIDPrefix + id }

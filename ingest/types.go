// Package ingest: record types and the parse error sentinel.

package ingest

import "errors"

// ErrParse indicates a malformed record or an unreadable dataset file.
var ErrParse = errors.New("ingest: parse error")

// Book is one record of the books file.
type Book struct {
	ISBN      string
	Title     string
	Author    string
	Year      int
	Publisher string
}

// Rating is one record of the ratings file. UserID and ISBN may reference
// users or books missing from the corpus; the graph layer skips those.
type Rating struct {
	UserID string
	ISBN   string
	Rating int
}

// User is one record of the users file. Age is nil when the corpus records
// it as NULL.
type User struct {
	ID       string
	Location string
	Age      *int
}

// Dataset bundles the three parsed files.
type Dataset struct {
	Books   []Book
	Ratings []Rating
	Users   []User
}

package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albertoventurini/graph-book-reviews/ingest"
)

// writeCorpus writes raw bytes to a temp file and returns its path.
func writeCorpus(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// TestParseBooks covers quoted fields, semicolon separators, and the
// header skip.
func TestParseBooks(t *testing.T) {
	data := []byte("\"ISBN\";\"Title\";\"Author\";\"Year\";\"Publisher\"\n" +
		"\"0001\";\"Dracula\";\"Bram Stoker\";\"1897\";\"Archibald Constable\"\n" +
		"\"0002\";\"Carmilla; A Vampire Tale\";\"Sheridan Le Fanu\";\"1872\";\"R. Bentley\"\r\n")

	books, err := ingest.ParseBooks(writeCorpus(t, "books.csv", data))
	require.NoError(t, err)
	require.Len(t, books, 2)

	require.Equal(t, ingest.Book{
		ISBN:      "0001",
		Title:     "Dracula",
		Author:    "Bram Stoker",
		Year:      1897,
		Publisher: "Archibald Constable",
	}, books[0])

	// The separator inside quotes is literal.
	require.Equal(t, "Carmilla; A Vampire Tale", books[1].Title)
	require.Equal(t, 1872, books[1].Year)
}

// TestParseBooks_ISO8859_1 verifies the charset decode: a 0xE9 byte is the
// Latin-1 "é".
func TestParseBooks_ISO8859_1(t *testing.T) {
	data := []byte("ISBN;Title;Author;Year;Publisher\n0001;Les Mis")
	data = append(data, 0xE9) // é in ISO-8859-1
	data = append(data, []byte("rables;Victor Hugo;1862;A. Lacroix\n")...)

	books, err := ingest.ParseBooks(writeCorpus(t, "books.csv", data))
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Les Misérables", books[0].Title)
}

// TestParseBooks_Malformed verifies strict per-file failure with ErrParse
// carrying the record position.
func TestParseBooks_Malformed(t *testing.T) {
	data := []byte("ISBN;Title;Author;Year;Publisher\n" +
		"0001;Dracula;Bram Stoker;MDCCCXCVII;Archibald Constable\n")

	_, err := ingest.ParseBooks(writeCorpus(t, "books.csv", data))
	require.ErrorIs(t, err, ingest.ErrParse)
	require.ErrorContains(t, err, "record 1")

	data = []byte("ISBN;Title\n0001;Dracula\n")
	_, err = ingest.ParseBooks(writeCorpus(t, "books.csv", data))
	require.ErrorIs(t, err, ingest.ErrParse)

	_, err = ingest.ParseBooks(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, ingest.ErrParse)
}

// TestParseRatings covers the ratings layout.
func TestParseRatings(t *testing.T) {
	data := []byte("User-ID;ISBN;Rating\n\"42\";\"0001\";\"7\"\n43;0002;0\n")

	ratings, err := ingest.ParseRatings(writeCorpus(t, "ratings.csv", data))
	require.NoError(t, err)
	require.Equal(t, []ingest.Rating{
		{UserID: "42", ISBN: "0001", Rating: 7},
		{UserID: "43", ISBN: "0002", Rating: 0},
	}, ratings)
}

// TestParseUsers covers the NULL-age convention and the location field.
func TestParseUsers(t *testing.T) {
	data := []byte("User-ID;Location;Age\n" +
		"\"42\";\"turin, piedmont, italy\";\"33\"\n" +
		"\"43\";\"oakland, california, usa\";NULL\n")

	users, err := ingest.ParseUsers(writeCorpus(t, "users.csv", data))
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.Equal(t, "42", users[0].ID)
	require.Equal(t, "turin, piedmont, italy", users[0].Location)
	require.NotNil(t, users[0].Age)
	require.Equal(t, 33, *users[0].Age)

	require.Nil(t, users[1].Age, "NULL age must parse to nil")
}

// TestParse_EdgeCases covers escaped quotes, blank lines, and a final
// record without a trailing line end.
func TestParse_EdgeCases(t *testing.T) {
	data := []byte("User-ID;ISBN;Rating\n" +
		"\n" + // blank line is dropped
		"\"42\";\"0001\";\"7\"\n" +
		"\"43\";\"0002\";\"8\"") // no trailing newline

	ratings, err := ingest.ParseRatings(writeCorpus(t, "ratings.csv", data))
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	require.Equal(t, 8, ratings[1].Rating)

	// Backslash-escaped quotes stay inside the field (escape intact, as in
	// the corpus convention).
	data = []byte("ISBN;Title;Author;Year;Publisher\n" +
		"\"0001\";\"The \\\"Un-Dead\\\"\";\"Bram Stoker\";\"1897\";\"A. Constable\"\n")
	books, err := ingest.ParseBooks(writeCorpus(t, "books.csv", data))
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "The \\\"Un-Dead\\\"", books[0].Title)
}

// TestParseDataset verifies the three-file bundle.
func TestParseDataset(t *testing.T) {
	books := writeCorpus(t, "books.csv", []byte("h;h;h;h;h\n0001;Dracula;Bram Stoker;1897;AC\n"))
	ratings := writeCorpus(t, "ratings.csv", []byte("h;h;h\n42;0001;7\n"))
	users := writeCorpus(t, "users.csv", []byte("h;h;h\n42;turin, piedmont, italy;33\n"))

	ds, err := ingest.ParseDataset(books, ratings, users)
	require.NoError(t, err)
	require.Len(t, ds.Books, 1)
	require.Len(t, ds.Ratings, 1)
	require.Len(t, ds.Users, 1)

	_, err = ingest.ParseDataset(books, ratings, filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, ingest.ErrParse)
}

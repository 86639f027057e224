// Package ingest: the semicolon-separated field scanner and the per-file
// parse functions.

package ingest

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const separator = ';'

// ParseDataset parses the three corpus files into a Dataset.
func ParseDataset(booksPath, ratingsPath, usersPath string) (*Dataset, error) {
	books, err := ParseBooks(booksPath)
	if err != nil {
		return nil, err
	}
	ratings, err := ParseRatings(ratingsPath)
	if err != nil {
		return nil, err
	}
	users, err := ParseUsers(usersPath)
	if err != nil {
		return nil, err
	}

	return &Dataset{Books: books, Ratings: ratings, Users: users}, nil
}

// ParseBooks parses the books file.
// Record layout: ISBN; title; author; year; publisher.
func ParseBooks(path string) ([]Book, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	books := make([]Book, 0, len(records))
	for i, rec := range skipHeader(records) {
		if len(rec) < 5 {
			return nil, recordErr(path, i, "want 5+ fields, have %d", len(rec))
		}
		year, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, recordErr(path, i, "bad year %q", rec[3])
		}
		books = append(books, Book{
			ISBN:      rec[0],
			Title:     rec[1],
			Author:    rec[2],
			Year:      year,
			Publisher: rec[4],
		})
	}

	return books, nil
}

// ParseRatings parses the ratings file.
// Record layout: user ID; ISBN; rating.
func ParseRatings(path string) ([]Rating, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	ratings := make([]Rating, 0, len(records))
	for i, rec := range skipHeader(records) {
		if len(rec) < 3 {
			return nil, recordErr(path, i, "want 3 fields, have %d", len(rec))
		}
		rating, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, recordErr(path, i, "bad rating %q", rec[2])
		}
		ratings = append(ratings, Rating{UserID: rec[0], ISBN: rec[1], Rating: rating})
	}

	return ratings, nil
}

// ParseUsers parses the users file.
// Record layout: user ID; location; age (or the literal NULL).
func ParseUsers(path string) ([]User, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(records))
	for i, rec := range skipHeader(records) {
		if len(rec) < 3 {
			return nil, recordErr(path, i, "want 3 fields, have %d", len(rec))
		}
		var age *int
		if rec[2] != "NULL" {
			a, err := strconv.Atoi(rec[2])
			if err != nil {
				return nil, recordErr(path, i, "bad age %q", rec[2])
			}
			age = &a
		}
		users = append(users, User{ID: rec[0], Location: rec[1], Age: age})
	}

	return users, nil
}

// skipHeader drops the header record present in every corpus file.
func skipHeader(records [][]string) [][]string {
	if len(records) == 0 {
		return nil
	}

	return records[1:]
}

// recordErr wraps ErrParse with the file path and the 1-based data-record
// number (the header does not count).
func recordErr(path string, idx int, format string, args ...any) error {
	return fmt.Errorf("%w: %s record %d: %s", ErrParse, path, idx+1, fmt.Sprintf(format, args...))
}

// readRecords reads path, decodes ISO-8859-1, and splits the text into
// records of fields. Quoting rules follow the corpus convention:
//
//   - a double quote toggles quoted mode, unless preceded by a backslash;
//   - the field value is the text between the quotes, with backslash
//     escapes left intact;
//   - separators and line ends inside quotes are literal;
//   - LF, CR, and CRLF all end a record.
//
// All-empty records (blank lines) are dropped.
func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	return splitRecords(string(raw)), nil
}

// splitRecords is the field scanner over the decoded text.
// The separator and quote characters are ASCII, so byte-wise scanning is
// safe on UTF-8 text.
func splitRecords(text string) [][]string {
	var (
		records  [][]string
		fields   []string
		start    int  // first byte of the current field value
		end      = -1 // one past the last byte, -1 while unset
		inQuotes bool
	)

	flushField := func(i int) {
		if end < start {
			end = i
		}
		fields = append(fields, text[start:end])
		start = i + 1
		end = start - 1
	}
	flushRecord := func(i int) {
		flushField(i)
		if !blankRecord(fields) {
			records = append(records, fields)
		}
		fields = nil
	}

	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case (c == '\n' || c == '\r') && !inQuotes:
			flushRecord(i)
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
				start = i + 1
				end = start - 1
			}
		case c == '"' && (i == 0 || text[i-1] != '\\'):
			if inQuotes {
				end = i
			} else {
				start = i + 1
			}
			inQuotes = !inQuotes
		case c == separator && !inQuotes:
			flushField(i)
		}
		i++
	}
	// A final record without a trailing line end still counts.
	if start < len(text) || len(fields) > 0 {
		flushRecord(len(text))
	}

	return records
}

// blankRecord reports whether the record carries no data at all.
func blankRecord(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}

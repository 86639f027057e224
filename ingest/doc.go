// Package ingest parses the BX book-review CSV corpus into plain record
// slices, ready to be handed to the graph construction layer.
//
// The corpus is not RFC 4180: fields are semicolon-separated, values are
// double-quoted with backslash-escaped embedded quotes, and the bytes are
// ISO-8859-1 encoded. encoding/csv rejects the escaping convention, so the
// field scanner is hand-rolled; the charset is decoded through
// golang.org/x/text/encoding/charmap.
//
// Three files make up a dataset:
//
//	books   — ISBN; title; author; year of publication; publisher
//	ratings — user ID; ISBN; rating
//	users   — user ID; location ("city, state, country"); age or NULL
//
// The first record of every file is a header and is skipped. Parsing is
// strict: a malformed record fails the whole file with an error wrapping
// ErrParse, carrying the file path and record number. Validating input
// belongs here, not in the graph core.
package ingest

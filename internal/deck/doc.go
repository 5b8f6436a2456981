// Package deck holds the flashcard collection and its on-disk format.
//
// A deck file is UTF-8 text with one card per line:
//
//	front|||back|||score
//
// Load replaces the in-memory collection with the file's contents, skipping
// malformed lines. Save overwrites the file with the collection. Nothing is
// persisted implicitly.
package deck

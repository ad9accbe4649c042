package store

import "errors"

// ErrNotFound is returned by Load when no document exists for an address.
var ErrNotFound = errors.New("no document for address")

// Interface is the persistence boundary for one keyed document corpus
// (curated records or intake pools). Documents are opaque bytes; all
// writes are whole-document replacements.
type Interface interface {
	// Exists reports whether a document is present for the address.
	Exists(addr string) (bool, error)

	// Load returns the stored document, or ErrNotFound.
	Load(addr string) ([]byte, error)

	// Save replaces the document for the address. The write is
	// all-or-nothing: a failure never leaves a document mixing old and
	// new content.
	Save(addr string, body []byte) error

	// List returns every address present, sorted ascending.
	List() ([]string, error)
}

package workspace

import "errors"

var (
	// ErrContextNotFound reports that no directory on the search path matches
	// the configured repo or day pattern.
	ErrContextNotFound = errors.New("context not found")

	// ErrAmbiguousContext reports sibling directories matching the same
	// pattern with different captures; the tool refuses to guess.
	ErrAmbiguousContext = errors.New("ambiguous context")

	// ErrNoPartFound reports that an operation needs a part but no file in
	// the day directory matches the part pattern.
	ErrNoPartFound = errors.New("no part found")
)

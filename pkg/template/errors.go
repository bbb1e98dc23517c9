package template

import "errors"

var (
	// ErrMalformedTemplate reports unbalanced or empty placeholder delimiters.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrUnresolvedPlaceholder reports a placeholder that is not a known key.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
)

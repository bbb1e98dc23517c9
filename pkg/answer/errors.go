package answer

import "errors"

var (
	// ErrNoOutput reports a solution process that produced no stdout to
	// take an answer from.
	ErrNoOutput = errors.New("no output produced")

	// ErrEmptyInput reports piped or redirected stdin that was blank after
	// trimming whitespace.
	ErrEmptyInput = errors.New("empty input")
)

package scaffold

import "errors"

var (
	// ErrAlreadyExists reports a scaffold target that is already present;
	// existing files are never overwritten.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNoPreviousPart reports a new-part request in a day with no part
	// file to copy from.
	ErrNoPreviousPart = errors.New("no previous part")
)

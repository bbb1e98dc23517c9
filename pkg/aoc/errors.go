package aoc

import "errors"

// ErrNoSession reports that no session credential could be found in the
// environment or the session file.
var ErrNoSession = errors.New("no session token")

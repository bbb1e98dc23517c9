package runner

import "errors"

// ErrSpawn reports a command that could not be launched at all, as opposed
// to one that ran and exited non-zero.
var ErrSpawn = errors.New("cannot spawn process")

// Package answer turns a solution's output, or the invoking process's
// stdin, into the value submitted to the puzzle endpoint.
//
// The source is an explicit two-variant choice made once, before anything
// runs: either the configured run command is executed and its last non-empty
// stdout line is the answer, or stdin is read in full. Stdin is consumed at
// most once per invocation.
package answer

import (
	"fmt"
	"io"
	"strings"

	"github.com/aockit/pkg/runner"
)

// Source selects where the answer comes from.
type Source int

const (
	// FromProcess runs the configured run command and takes the answer
	// from its output.
	FromProcess Source = iota
	// FromStdin reads the answer from the invoking process's stdin.
	FromStdin
)

func (s Source) String() string {
	if s == FromStdin {
		return "stdin"
	}
	return "process"
}

// ChooseSource decides the answer source from the CLI surface: the
// --stdin flag always wins; piped stdin implies FromStdin unless a --part
// override asks for a fresh process run.
func ChooseSource(stdinFlag, piped, partOverridden bool) Source {
	if stdinFlag {
		return FromStdin
	}
	if piped && !partOverridden {
		return FromStdin
	}
	return FromProcess
}

// FromRun extracts the answer from a finished run: the last non-empty line
// of captured stdout, whitespace-trimmed. commandLine is only used to name
// the offender in the error.
func FromRun(res *runner.Result, commandLine string) (string, error) {
	lines := strings.Split(res.Stdout, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line, nil
		}
	}
	return "", fmt.Errorf("%w: %q printed nothing on stdout", ErrNoOutput, commandLine)
}

// FromReader reads the whole stream and trims it.
func FromReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("%w: stdin was blank", ErrEmptyInput)
	}
	return value, nil
}

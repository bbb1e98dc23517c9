// Package runner executes rendered command lines through the shell,
// mirroring output to the terminal in real time while buffering it for
// later inspection.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Result holds the captured output and exit status of one command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs shell command lines. Output is written to Stdout/Stderr as it
// is produced and captured into the Result at the same time.
type Runner struct {
	Shell  string // shell binary, "sh" by default
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner mirroring output to the process's own streams.
func New() *Runner {
	return &Runner{Shell: "sh", Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes commandLine via `sh -c` with dir as the working directory.
// A non-zero exit code is reported in the Result, not as an error; the
// caller decides whether that blocks the operation. Run returns ErrSpawn
// only when the process cannot be started.
func (r *Runner) Run(ctx context.Context, dir, commandLine string) (*Result, error) {
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", commandLine)
	cmd.Dir = dir

	// Stdin stays closed: the submit pipeline is the only reader of the
	// invoking process's stdin.
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(r.Stdout, &outBuf)
	cmd.Stderr = io.MultiWriter(r.Stderr, &errBuf)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSpawn, commandLine, err)
	}

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("running %q: %w", commandLine, err)
		}
		exitCode = exitErr.ExitCode()
	}

	return &Result{
		Stdout:   outBuf.String(),
		Stderr:   errBuf.String(),
		ExitCode: exitCode,
	}, nil
}

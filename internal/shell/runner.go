// Package shell provides the subprocess invocation layer. Every external
// tool the orchestrator touches (apt-get, gem, cmake) goes through a
// Runner, which keeps the build steps testable without spawning processes.
package shell

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Command describes a single subprocess invocation.
type Command struct {
	// Dir is the working directory for the invocation. Empty means the
	// current process working directory.
	Dir string

	Name string
	Args []string
}

// String renders the command the way it would appear on a shell prompt.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes commands. Implementations must block until the command
// finishes and return a non-nil error for any non-zero exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitCode extracts the exit code carried by an error returned from a
// Runner. Errors that don't wrap an *exec.ExitError map to 1.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/sconestudio/sconebuild/internal/ctxlog"
)

// ExecRunner runs commands as real subprocesses with inherited standard
// streams, so the underlying tool's diagnostics reach the console directly.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, cmd Command) error {
	ctxlog.FromContext(ctx).Info("Running command.", "cmd", cmd.String(), "dir", cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Name, err)
	}
	return nil
}

// DryRunner logs each command without executing it. Used by --dry-run.
type DryRunner struct{}

// Run implements Runner.
func (DryRunner) Run(ctx context.Context, cmd Command) error {
	ctxlog.FromContext(ctx).Info("Would run command.", "cmd", cmd.String(), "dir", cmd.Dir)
	return nil
}

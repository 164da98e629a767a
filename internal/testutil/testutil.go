// Package testutil provides shared helpers for package tests: a recording
// fake runner and a pre-populated temporary workspace.
package testutil

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sconestudio/sconebuild/internal/shell"
	"github.com/sconestudio/sconebuild/internal/workspace"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordingRunner is a shell.Runner that records every command instead of
// executing it. FailOn, when set, can inject a failure for a matching
// command to simulate a non-zero subprocess exit.
type RecordingRunner struct {
	mu       sync.Mutex
	commands []shell.Command

	FailOn func(shell.Command) error
}

// Run implements shell.Runner.
func (r *RecordingRunner) Run(_ context.Context, cmd shell.Command) error {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()
	if r.FailOn != nil {
		return r.FailOn(cmd)
	}
	return nil
}

// Commands returns a copy of the recorded invocations in order.
func (r *RecordingRunner) Commands() []shell.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shell.Command(nil), r.commands...)
}

// NewWorkspace returns a workspace rooted in a fresh temporary directory
// with the full layout created for the given dependency names.
func NewWorkspace(t *testing.T, names []string) workspace.Workspace {
	t.Helper()
	ws, err := workspace.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, ws.EnsureLayout(names))
	return ws
}

// MarkInstalled creates the install directory for a dependency, making the
// cache check treat it as already built.
func MarkInstalled(t *testing.T, ws workspace.Workspace, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ws.InstallDir(name), 0o755))
}

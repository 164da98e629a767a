package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sconestudio/sconebuild/internal/app"
	"github.com/sconestudio/sconebuild/internal/shell"
	"github.com/sconestudio/sconebuild/internal/testutil"
	"github.com/sconestudio/sconebuild/internal/workspace"
)

func newTestApp(t *testing.T, cfg app.Config, runner shell.Runner) (*app.App, workspace.Workspace) {
	t.Helper()
	if cfg.Root == "" {
		cfg.Root = t.TempDir()
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 2
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	logBuffer := &testutil.SafeBuffer{}
	a, err := app.NewApp(logBuffer, validated, runner)
	require.NoError(t, err)

	ws, err := workspace.New(cfg.Root)
	require.NoError(t, err)
	return a, ws
}

func TestRunDepsTarget(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	a, _ := newTestApp(t, app.Config{Target: "deps"}, runner)

	require.NoError(t, a.Run(context.Background()))

	cmds := runner.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, "sudo", cmds[0].Name)
	assert.Equal(t, []string{"apt-get", "update"}, cmds[0].Args)
	assert.Equal(t, "apt-get", cmds[1].Args[0])
	assert.Contains(t, cmds[1].Args, "cmake")
	assert.Equal(t, []string{"gem", "install", "--no-document", "fpm"}, cmds[2].Args)
}

func TestRunAllTarget(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	a, _ := newTestApp(t, app.Config{Target: "all"}, runner)

	require.NoError(t, a.Run(context.Background()))
	assert.Len(t, runner.Commands(), 12, "four dependencies, three cmake invocations each")
}

func TestRunCreatesWorkspaceLayout(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	a, ws := newTestApp(t, app.Config{Target: "deps"}, runner)

	require.NoError(t, a.Run(context.Background()))
	assert.DirExists(t, ws.SubmodulesDir())
	for _, name := range []string{"osg", "simbody", "opensim", "scone"} {
		assert.DirExists(t, ws.DepDir(name))
	}
}

func TestRunSkipsInstalledDependency(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	root := t.TempDir()
	ws, err := workspace.New(root)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(ws.InstallDir("osg"), 0o755))

	a, _ := newTestApp(t, app.Config{Target: "osg", Root: root}, runner)
	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, runner.Commands())
}

func TestNewAppAppliesToolchainOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolchain.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
packages {
  apt = ["cmake"]
}
`), 0o644))

	a, _ := newTestApp(t, app.Config{Target: "deps", ToolchainPath: path}, &testutil.RecordingRunner{})
	assert.Equal(t, []string{"cmake"}, a.Toolchain().Packages.Apt)
}

func TestNewAppRejectsBadToolchainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolchain.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`dependency "osg" {`), 0o644))

	cfg, err := app.NewConfig(app.Config{Target: "deps", Root: t.TempDir(), Jobs: 1, ToolchainPath: path})
	require.NoError(t, err)

	_, err = app.NewApp(&testutil.SafeBuffer{}, cfg, &testutil.RecordingRunner{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toolchain")
}

package cmake

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sconestudio/sconebuild/internal/shell"
)

func TestConfigureArgs(t *testing.T) {
	job := Job{
		SourceDir:  "/work/submodules/simbody",
		BuildDir:   "/work/dependencies/simbody/build",
		InstallDir: "/work/dependencies/simbody/install",
		ExtraFlags: []string{"-DFOO=ON"},
	}

	want := []string{
		"/work/submodules/simbody",
		"-DCMAKE_BUILD_TYPE=Release",
		"-DCMAKE_INSTALL_PREFIX=/work/dependencies/simbody/install",
		"-DCMAKE_POLICY_VERSION_MINIMUM=3.5",
		"-DFOO=ON",
	}
	if diff := cmp.Diff(want, ConfigureArgs(job)); diff != "" {
		t.Errorf("ConfigureArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultJobs(t *testing.T) {
	assert.GreaterOrEqual(t, DefaultJobs(), 1)
}

type scriptedRunner struct {
	commands []shell.Command
	failOn   func(shell.Command) error
}

func (r *scriptedRunner) Run(_ context.Context, cmd shell.Command) error {
	r.commands = append(r.commands, cmd)
	if r.failOn != nil {
		return r.failOn(cmd)
	}
	return nil
}

func TestBuilderRunSequence(t *testing.T) {
	runner := &scriptedRunner{}
	b := Builder{Runner: runner, Jobs: 4}
	job := Job{SourceDir: "/src", BuildDir: "/build", InstallDir: "/install"}

	require.NoError(t, b.Run(context.Background(), job))
	require.Len(t, runner.commands, 3)

	assert.Equal(t, ConfigureArgs(job), runner.commands[0].Args)
	assert.Equal(t, []string{"--build", ".", "--parallel", "4"}, runner.commands[1].Args)
	assert.Equal(t, []string{"--install", "."}, runner.commands[2].Args)
	for _, cmd := range runner.commands {
		assert.Equal(t, "cmake", cmd.Name)
		assert.Equal(t, "/build", cmd.Dir)
	}
}

func TestBuilderRunStopsOnFailure(t *testing.T) {
	simulated := errors.New("compile error")
	runner := &scriptedRunner{
		failOn: func(cmd shell.Command) error {
			if cmd.Args[0] == "--build" {
				return simulated
			}
			return nil
		},
	}
	b := Builder{Runner: runner, Jobs: 1}

	err := b.Run(context.Background(), Job{SourceDir: "/src", BuildDir: "/build", InstallDir: "/install"})
	require.ErrorIs(t, err, simulated)
	assert.Len(t, runner.commands, 2, "install must not run after a failed build")
}

// Package cmake assembles and runs the configure/build/install command
// triple for a single dependency.
package cmake

import (
	"context"
	"runtime"
	"strconv"

	"github.com/sconestudio/sconebuild/internal/shell"
)

// Job describes one configure/build/install cycle.
type Job struct {
	SourceDir  string
	BuildDir   string
	InstallDir string

	// ExtraFlags follow the common configure arguments.
	ExtraFlags []string
}

// ConfigureArgs returns the full argument list for the configure
// invocation: source path, release build type, install prefix, the policy
// compatibility floor, then the job's extra flags.
func ConfigureArgs(job Job) []string {
	args := []string{
		job.SourceDir,
		"-DCMAKE_BUILD_TYPE=Release",
		"-DCMAKE_INSTALL_PREFIX=" + job.InstallDir,
		"-DCMAKE_POLICY_VERSION_MINIMUM=3.5",
	}
	return append(args, job.ExtraFlags...)
}

// DefaultJobs is half the available processors, floored at 1.
func DefaultJobs() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Builder runs cmake jobs through a shell.Runner.
type Builder struct {
	Runner shell.Runner
	Jobs   int
}

// Run executes configure, build, and install in the job's build directory,
// stopping at the first failing invocation.
func (b Builder) Run(ctx context.Context, job Job) error {
	steps := []shell.Command{
		{Dir: job.BuildDir, Name: "cmake", Args: ConfigureArgs(job)},
		{Dir: job.BuildDir, Name: "cmake", Args: []string{"--build", ".", "--parallel", strconv.Itoa(b.Jobs)}},
		{Dir: job.BuildDir, Name: "cmake", Args: []string{"--install", "."}},
	}
	for _, step := range steps {
		if err := b.Runner.Run(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

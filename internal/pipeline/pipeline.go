package pipeline

import (
	"context"
	"fmt"

	"github.com/sconestudio/sconebuild/internal/cmake"
	"github.com/sconestudio/sconebuild/internal/config"
	"github.com/sconestudio/sconebuild/internal/ctxlog"
	"github.com/sconestudio/sconebuild/internal/workspace"
)

// Orchestrator runs dependency build steps against a workspace.
type Orchestrator struct {
	Toolchain *config.Toolchain
	Workspace workspace.Workspace
	Builder   cmake.Builder
}

// Build runs one dependency's step: cache check, build-directory reset,
// then the cmake configure/build/install triple. A cached dependency whose
// install directory exists is skipped unless force is set.
func (o *Orchestrator) Build(ctx context.Context, dep *config.Dependency, force bool) error {
	logger := ctxlog.FromContext(ctx).With("dependency", dep.Name)

	if dep.CacheInstall && !force && o.Workspace.Installed(dep.Name) {
		logger.Info("Already built, skipping. Use --rebuild to force.")
		return nil
	}

	buildDir, err := o.Workspace.ResetBuildDir(dep.Name)
	if err != nil {
		return fmt.Errorf("preparing build directory for %s: %w", dep.Name, err)
	}

	job := cmake.Job{
		SourceDir:  o.Workspace.SourceDir(dep.Source),
		BuildDir:   buildDir,
		InstallDir: o.Workspace.InstallDir(dep.Name),
		ExtraFlags: dep.CMakeFlags,
	}
	logger.Info("Building dependency.", "source", job.SourceDir, "install", job.InstallDir)
	if err := o.Builder.Run(ctx, job); err != nil {
		return fmt.Errorf("building %s: %w", dep.Name, err)
	}

	logger.Info("Dependency installed.", "install", job.InstallDir)
	return nil
}

// BuildAll runs every dependency in toolchain order, aborting on the first
// failure. Already-completed steps are not rolled back.
func (o *Orchestrator) BuildAll(ctx context.Context, force bool) error {
	for _, dep := range o.Toolchain.Dependencies {
		if err := o.Build(ctx, dep, force); err != nil {
			return err
		}
	}
	return nil
}

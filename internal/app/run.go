package app

import (
	"context"
	"fmt"

	"github.com/sconestudio/sconebuild/internal/cmake"
	"github.com/sconestudio/sconebuild/internal/ctxlog"
	"github.com/sconestudio/sconebuild/internal/pipeline"
	"github.com/sconestudio/sconebuild/internal/sysdeps"
)

// Run executes the selected target. The workspace layout is created up
// front, then the target dispatches to the prerequisite installer or to
// one or more build steps in chain order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "target", a.config.Target)

	if err := a.workspace.EnsureLayout(a.toolchain.Names()); err != nil {
		return err
	}

	orch := &pipeline.Orchestrator{
		Toolchain: a.toolchain,
		Workspace: a.workspace,
		Builder: cmake.Builder{
			Runner: a.runner,
			Jobs:   a.config.Jobs,
		},
	}

	switch a.config.Target {
	case "deps":
		installer := sysdeps.Installer{Runner: a.runner}
		if err := installer.Install(ctx, a.toolchain.Packages); err != nil {
			return err
		}
	case "all":
		if err := orch.BuildAll(ctx, a.config.Rebuild); err != nil {
			return err
		}
	default:
		dep, ok := a.toolchain.Dependency(a.config.Target)
		if !ok {
			return fmt.Errorf("no dependency descriptor for target %q", a.config.Target)
		}
		if err := orch.Build(ctx, dep, a.config.Rebuild); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/sconestudio/sconebuild/internal/config"
	"github.com/sconestudio/sconebuild/internal/ctxlog"
	"github.com/sconestudio/sconebuild/internal/shell"
	"github.com/sconestudio/sconebuild/internal/workspace"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	workspace workspace.Workspace
	toolchain *config.Toolchain
	runner    shell.Runner
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a loaded
// toolchain model. A nil runner selects the real subprocess runner, or the
// dry-run runner when the config asks for it; tests inject their own.
func NewApp(outW io.Writer, cfg *Config, runner shell.Runner) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	ws, err := workspace.New(cfg.Root)
	if err != nil {
		return nil, err
	}
	logger.Debug("Workspace resolved.", "root", ws.Root)

	toolchain, err := config.Load(ctx, cfg.ToolchainPath, ws, runtime.GOOS)
	if err != nil {
		return nil, fmt.Errorf("failed to load toolchain configuration: %w", err)
	}
	logger.Debug("Toolchain loaded.", "dependencies", toolchain.Names())

	if runner == nil {
		if cfg.DryRun {
			runner = shell.DryRunner{}
		} else {
			runner = shell.ExecRunner{}
		}
	}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		workspace: ws,
		toolchain: toolchain,
		runner:    runner,
	}, nil
}

// Toolchain returns the loaded toolchain model. This is primarily for testing.
func (a *App) Toolchain() *config.Toolchain {
	return a.toolchain
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sconestudio/sconebuild/internal/app"
	"github.com/sconestudio/sconebuild/internal/cmake"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sconebuild", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
sconebuild - builds the SCONE native dependency chain.

Usage:
  sconebuild [options] TARGET

Targets:
  deps      Install system prerequisites (apt packages and gem tools).
  osg       Build OpenSceneGraph.
  simbody   Build Simbody.
  opensim   Build OpenSim (requires simbody to be installed).
  scone     Build SCONE (always rebuilt, never cached).
  all       Build osg, simbody, opensim, scone in order.

Options:
`)
		flagSet.PrintDefaults()
	}

	rebuildFlag := flagSet.Bool("rebuild", false, "Force a rebuild even if the install directory already exists.")
	rootFlag := flagSet.String("root", ".", "Workspace root holding submodules/ and dependencies/.")
	toolchainFlag := flagSet.String("toolchain", "", "Path to an HCL toolchain override file.")
	jobsFlag := flagSet.Int("jobs", cmake.DefaultJobs(), "Parallel jobs passed to cmake --build.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Log each command without executing it.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No target provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected exactly one target, got %d", flagSet.NArg())}
	}
	target := flagSet.Arg(0)
	slog.Debug("Target determined.", "target", target)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Target:        target,
		Rebuild:       *rebuildFlag,
		Root:          *rootFlag,
		ToolchainPath: *toolchainFlag,
		Jobs:          *jobsFlag,
		DryRun:        *dryRunFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// Package workspace models the on-disk layout the orchestrator operates on:
// a submodules root holding source checkouts and a dependencies root with
// one build/ and install/ pair per dependency. The install directory doubles
// as the "already built" cache marker.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is the root directory holding submodules/ and dependencies/.
// All paths the orchestrator touches are derived from it, so tests can
// point it at a temporary directory.
type Workspace struct {
	Root string
}

// New returns a Workspace rooted at the given directory, resolved to an
// absolute path so cmake receives stable install prefixes regardless of
// the process working directory.
func New(root string) (Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Workspace{}, fmt.Errorf("failed to resolve workspace root %q: %w", root, err)
	}
	return Workspace{Root: abs}, nil
}

// SubmodulesDir is the root of the externally provisioned source checkouts.
func (w Workspace) SubmodulesDir() string {
	return filepath.Join(w.Root, "submodules")
}

// DependenciesDir is the root holding per-dependency build/install pairs.
func (w Workspace) DependenciesDir() string {
	return filepath.Join(w.Root, "dependencies")
}

// SourceDir resolves a descriptor's source path. Relative paths are
// anchored at the workspace root; absolute paths (e.g. from a toolchain
// override) are used as-is.
func (w Workspace) SourceDir(src string) string {
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(w.Root, src)
}

// DepDir is the per-dependency directory under dependencies/.
func (w Workspace) DepDir(name string) string {
	return filepath.Join(w.DependenciesDir(), name)
}

// BuildDir is the ephemeral cmake scratch directory for a dependency.
func (w Workspace) BuildDir(name string) string {
	return filepath.Join(w.DepDir(name), "build")
}

// InstallDir is the artifact destination for a dependency. Its existence
// is the sole "already built" signal.
func (w Workspace) InstallDir(name string) string {
	return filepath.Join(w.DepDir(name), "install")
}

// EnsureLayout creates the submodules root, the dependencies root, and one
// directory per named dependency. Existing directories are left untouched.
func (w Workspace) EnsureLayout(names []string) error {
	dirs := []string{w.SubmodulesDir(), w.DependenciesDir()}
	for _, name := range names {
		dirs = append(dirs, w.DepDir(name))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create workspace directory %s: %w", dir, err)
		}
	}
	return nil
}

// Installed reports whether the dependency's install directory exists.
// A crashed install can leave a partially populated directory behind, so
// this is a presence check, not a success check.
func (w Workspace) Installed(name string) bool {
	_, err := os.Stat(w.InstallDir(name))
	return err == nil
}

// ResetBuildDir deletes any stale build directory for the dependency and
// recreates it empty, returning its path.
func (w Workspace) ResetBuildDir(name string) (string, error) {
	dir := w.BuildDir(name)
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("failed to remove stale build directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create build directory %s: %w", dir, err)
	}
	return dir, nil
}

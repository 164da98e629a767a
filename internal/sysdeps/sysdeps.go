// Package sysdeps installs the system-level prerequisites: apt packages and
// gem-distributed tools, both via sudo.
package sysdeps

import (
	"context"
	"fmt"

	"github.com/sconestudio/sconebuild/internal/config"
	"github.com/sconestudio/sconebuild/internal/shell"
)

// Installer runs the package-manager invocations through a shell.Runner.
type Installer struct {
	Runner shell.Runner
}

// Install refreshes the apt index, installs the apt packages, then installs
// the gem packages. The first non-zero exit aborts; nothing is retried.
func (i Installer) Install(ctx context.Context, pkgs config.Packages) error {
	cmds := []shell.Command{
		{Name: "sudo", Args: []string{"apt-get", "update"}},
		{Name: "sudo", Args: append([]string{"apt-get", "install", "-y"}, pkgs.Apt...)},
	}
	if len(pkgs.Gem) > 0 {
		cmds = append(cmds, shell.Command{
			Name: "sudo",
			Args: append([]string{"gem", "install", "--no-document"}, pkgs.Gem...),
		})
	}
	for _, cmd := range cmds {
		if err := i.Runner.Run(ctx, cmd); err != nil {
			return fmt.Errorf("installing system packages: %w", err)
		}
	}
	return nil
}

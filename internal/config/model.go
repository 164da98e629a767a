package config

// Packages holds the system-level prerequisites installed by the deps target.
type Packages struct {
	Apt []string
	Gem []string
}

// Dependency describes one entry of the build chain.
type Dependency struct {
	// Name is the CLI target name and the directory name under dependencies/.
	Name string

	// Source is the workspace-relative path of the source checkout.
	Source string

	// CacheInstall gates the install-directory cache check. When false the
	// dependency is rebuilt on every run.
	CacheInstall bool

	// CMakeFlags are appended to the common configure arguments.
	CMakeFlags []string
}

// Toolchain is the complete, ordered build configuration for a run.
// Dependencies are listed in build order; later descriptors may reference
// earlier ones' install prefixes in their flags.
type Toolchain struct {
	Packages     Packages
	Dependencies []*Dependency
}

// Dependency looks up a descriptor by name.
func (t *Toolchain) Dependency(name string) (*Dependency, bool) {
	for _, dep := range t.Dependencies {
		if dep.Name == name {
			return dep, true
		}
	}
	return nil, false
}

// Names returns the dependency names in build order.
func (t *Toolchain) Names() []string {
	names := make([]string, 0, len(t.Dependencies))
	for _, dep := range t.Dependencies {
		names = append(names, dep.Name)
	}
	return names
}

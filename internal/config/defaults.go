package config

import (
	"github.com/sconestudio/sconebuild/internal/workspace"
)

// defaultAptPackages is the stock prerequisite list: general toolchain
// packages first, then per-dependency development headers.
var defaultAptPackages = []string{
	// general
	"git",
	"rsync",
	"cmake",
	"make",
	"gcc",
	"g++",
	"python3.12-dev",
	"ruby",
	"ruby-dev",
	"rubygems",
	// osg
	"libpng-dev",
	"zlib1g-dev",
	"qtbase5-dev",
	// simbody
	"liblapack-dev",
	// scone
	"freeglut3-dev",
	"libxi-dev",
	"libxmu-dev",
}

var defaultGemPackages = []string{"fpm"}

// Default returns the stock toolchain for the given workspace and platform
// family (a runtime.GOOS value). Platform-conditional flags are resolved
// here so the rest of the orchestrator treats descriptors as static data.
func Default(ws workspace.Workspace, goos string) *Toolchain {
	return &Toolchain{
		Packages: Packages{
			Apt: defaultAptPackages,
			Gem: defaultGemPackages,
		},
		Dependencies: []*Dependency{
			{
				Name:         "osg",
				Source:       "submodules/OpenSceneGraph",
				CacheInstall: true,
				CMakeFlags: []string{
					"-DOSG_USE_QT=ON",
					"-DDESIRED_QT_VERSION=5",
				},
			},
			{
				Name:         "simbody",
				Source:       "submodules/simbody",
				CacheInstall: true,
			},
			{
				Name:         "opensim",
				Source:       "submodules/opensim3-scone",
				CacheInstall: true,
				CMakeFlags:   opensimFlags(ws, goos),
			},
			{
				// The SCONE build is not considered stable yet, so its
				// install directory is deliberately not treated as a cache.
				Name:         "scone",
				Source:       "scone",
				CacheInstall: false,
			},
		},
	}
}

// opensimFlags builds the OpenSim configure flags: the Simbody install
// prefix, test/example suppression, and the platform family's rpath and
// standard-library selection.
func opensimFlags(ws workspace.Workspace, goos string) []string {
	flags := []string{
		"-DSIMBODY_HOME=" + ws.InstallDir("simbody"),
		"-DCMAKE_VERBOSE_MAKEFILE=FALSE",
		"-DBUILD_TESTING=OFF",
		"-DBUILD_API_EXAMPLES=OFF",
		"-DBUILD_API_ONLY=OFF",
	}
	if goos == "darwin" {
		return append(flags,
			"-DCMAKE_OSX_DEPLOYMENT_TARGET=10.10",
			"-DCMAKE_CXX_FLAGS=-stdlib=libc++",
			"-DCMAKE_MACOSX_RPATH=TRUE",
			"-DCMAKE_INSTALL_RPATH=@executable_path/../lib",
		)
	}
	return append(flags, "-DCMAKE_INSTALL_RPATH=$ORIGIN")
}

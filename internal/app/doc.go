// Package app wires the application together: it validates the run
// configuration, builds an isolated logger, loads the toolchain model, and
// dispatches the selected target to the prerequisite installer or the
// build pipeline.
package app

// Package config defines the toolchain model: the system package lists and
// the four dependency descriptors the orchestrator builds, in their fixed
// order.
//
// The built-in defaults describe the stock SCONE toolchain. An optional HCL
// override file can replace the package lists or adjust individual
// descriptors; its expressions are evaluated against workspace layout
// variables (workspace.root, install.<dep>, ...) so overrides can reference
// install prefixes the same way the built-in OpenSim descriptor references
// Simbody's.
package config

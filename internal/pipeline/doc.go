// Package pipeline sequences dependency build steps.
//
// The chain is strictly ordered: osg, then simbody, then opensim, then
// scone. Later descriptors embed earlier install prefixes in their
// configure flags, so no step may start before its predecessor's install
// directory is populated. Execution is sequential and fail-fast; the only
// parallelism is cmake's own --parallel, which is opaque here.
//
// A dependency whose install directory already exists is skipped unless
// forced, except for descriptors with caching disabled, which run every
// time.
package pipeline

// Package app composes the combiner pipeline: discovery, reading, merge,
// statistics and report writing, run strictly in sequence with fail-fast
// error propagation.
package app

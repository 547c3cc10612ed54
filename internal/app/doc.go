// Package app wires the pipeline together: scenario loading, graph
// assembly, reporting, and the solver handoff.
package app

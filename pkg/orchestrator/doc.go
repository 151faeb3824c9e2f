// Package orchestrator wires the prompt -> render -> write pipeline, providing
// dependency injection friendly helpers for callers that prefer a single
// entry point.
package orchestrator

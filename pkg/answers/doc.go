// Package answers defines the record produced by one interview run. The
// prompt sequencer builds a Record from the collected values and the readme
// renderer consumes it read-only.
package answers

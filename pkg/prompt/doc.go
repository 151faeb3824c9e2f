// Package prompt runs the README interview in a terminal. A Sequencer walks
// the question catalogue through a Driver (survey by default), re-asking any
// question whose answer fails validation, and returns an answers.Record.
package prompt

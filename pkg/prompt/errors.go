package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrInputClosed signals the input stream ended before every question was
	// answered.
	ErrInputClosed = errors.New("prompt: input closed")
)

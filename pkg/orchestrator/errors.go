package orchestrator

import "fmt"

// Operations reported by FatalIOError.
const (
	OpPrompt = "prompt"
	OpRender = "render"
	OpWrite  = "write"
)

// FatalIOError ends a run. It wraps the input stream, renderer or file write
// failure that caused it.
type FatalIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *FatalIOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("orchestrator: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("orchestrator: %s: %v", e.Op, e.Err)
}

func (e *FatalIOError) Unwrap() error {
	return e.Err
}

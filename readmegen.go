package readmegen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-readmegen/pkg/answers"
	"github.com/goliatone/go-readmegen/pkg/orchestrator"
	"github.com/goliatone/go-readmegen/pkg/readme"
)

// Record aliases answers.Record so callers can build one without importing
// the subpackage.
type Record = answers.Record

// License aliases answers.License.
type License = answers.License

// FatalIOError aliases orchestrator.FatalIOError for errors.As checks.
type FatalIOError = orchestrator.FatalIOError

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate runs the interview and returns the rendered README without writing
// it anywhere.
func Generate(ctx context.Context, options ...orchestrator.Option) ([]byte, error) {
	out, _, err := orchestrator.New(options...).Generate(ctx)
	return out, err
}

// Render renders rec into README Markdown.
func Render(rec Record) ([]byte, error) {
	return readme.Render(rec)
}

// EmbeddedTemplates exposes the bundled README template.
func EmbeddedTemplates() fs.FS {
	return readme.TemplatesFS()
}

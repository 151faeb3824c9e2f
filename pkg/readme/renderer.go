package readme

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-readmegen/pkg/answers"
	"github.com/goliatone/go-readmegen/pkg/render/template"
	"github.com/goliatone/go-readmegen/pkg/render/template/pongo"
)

const (
	defaultTemplate = "readme"
	// ContentType reports the media type of rendered documents.
	ContentType = "text/markdown"
)

// Option configures the Renderer.
type Option func(*Renderer)

// WithEngine replaces the pongo2 engine loaded from TemplatesFS.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// Renderer turns an answer record into a README document. Rendering reads
// only its arguments and the embedded template, so equal records produce
// byte-identical output.
type Renderer struct {
	engine       template.TemplateRenderer
	templateName string
}

// New constructs a Renderer backed by the embedded template unless an engine
// is supplied.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{templateName: defaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.engine == nil {
		engine, err := pongo.New(TemplatesFS(), pongo.WithName("readme"))
		if err != nil {
			return nil, fmt.Errorf("readme: template engine: %w", err)
		}
		r.engine = engine
	}

	if err := r.engine.GlobalContext(map[string]any{"toc": TableOfContents}); err != nil {
		return nil, fmt.Errorf("readme: global context: %w", err)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "markdown"
}

// ContentType reports the media type of Render's output.
func (r *Renderer) ContentType() string {
	return ContentType
}

// Render produces the README for rec. The error is only non-nil when the
// template engine itself fails; the bundled template accepts every record.
func (r *Renderer) Render(rec answers.Record) ([]byte, error) {
	if r == nil || r.engine == nil {
		return nil, errors.New("readme: renderer is nil")
	}

	out, err := r.engine.RenderTemplate(r.templateName, viewData(rec))
	if err != nil {
		return nil, fmt.Errorf("readme: render: %w", err)
	}
	return []byte(strings.TrimRight(out, "\n") + "\n"), nil
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
	defaultErr      error
)

// Render renders rec with a shared default Renderer.
func Render(rec answers.Record) ([]byte, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = New()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultRenderer.Render(rec)
}

func viewData(rec answers.Record) map[string]any {
	return map[string]any{
		"title":           rec.Title,
		"description":     rec.Description,
		"installation":    rec.Installation,
		"usage":           rec.Usage,
		"credits":         rec.Credits,
		"contributing":    rec.Contributing,
		"tests":           rec.Tests,
		"github":          rec.GitHub,
		"email":           rec.Email,
		"license":         string(rec.License),
		"license_section": LicenseSection(rec.License),
	}
}

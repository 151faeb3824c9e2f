package pongo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-readmegen/pkg/render/template"
)

const templateExt = ".tpl"

// Option configures the engine before construction.
type Option func(*Engine)

// WithName labels the underlying template set. It only shows up in pongo2
// error messages.
func WithName(name string) Option {
	return func(e *Engine) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			e.name = trimmed
		}
	}
}

// Engine satisfies template.TemplateRenderer with a pongo2 template set
// reading *.tpl files from an fs.FS.
type Engine struct {
	name string

	mu       sync.RWMutex
	set      *pongo2.TemplateSet
	compiled map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine over templates.
func New(templates fs.FS, options ...Option) (*Engine, error) {
	if templates == nil {
		return nil, errors.New("pongo: templates filesystem is nil")
	}

	e := &Engine{
		name:     "readmegen",
		compiled: make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	e.set = pongo2.NewSet(e.name, pongo2.NewFSLoader(templates))
	return e, nil
}

// RenderTemplate executes the named template; ".tpl" is appended when the
// name has no extension.
func (e *Engine) RenderTemplate(name string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	if !strings.HasSuffix(name, templateExt) {
		name += templateExt
	}

	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}

	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: template %q data: %w", name, err)
	}

	e.mu.RLock()
	out, err := tmpl.Execute(ctx)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("pongo: execute template %q: %w", name, err)
	}
	return out, nil
}

// GlobalContext merges data into the values every template sees.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("pongo: engine is nil")
	}
	ctx, err := toContext(data)
	if err != nil {
		return fmt.Errorf("pongo: global context: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	e.set.Globals.Update(ctx)
	return nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.compiled[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.compiled[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", name, err)
	}
	e.compiled[name] = tmpl
	return tmpl, nil
}

// toContext turns data into a pongo2 context. Structs, typed slices and maps
// go through a JSON round trip so templates see their JSON field names.
func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return normalise(map[string]any(v))
	case map[string]any:
		return normalise(v)
	}

	var decoded map[string]any
	if err := roundTrip(data, &decoded); err != nil {
		return nil, err
	}
	return pongo2.Context(decoded), nil
}

func normalise(in map[string]any) (pongo2.Context, error) {
	out := make(pongo2.Context, len(in))
	for key, value := range in {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		switch value.(type) {
		case nil, string, bool, int, int64, float64:
			out[key] = value
		default:
			var decoded any
			if err := roundTrip(value, &decoded); err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out[key] = decoded
		}
	}
	return out, nil
}

func roundTrip(in, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/goliatone/go-readmegen/pkg/answers"
	"github.com/goliatone/go-readmegen/pkg/prompt"
	"github.com/goliatone/go-readmegen/pkg/readme"
)

const (
	// DefaultOutputPath is where Run writes the README when no path is set.
	DefaultOutputPath = "README.md"
	defaultFileMode   = os.FileMode(0o644)
)

// Constructors for the built-in dependencies.
var (
	newSequencer = func(options ...prompt.Option) (Asker, error) { return prompt.New(options...) }
	newRenderer  = func() (DocumentRenderer, error) { return readme.New() }
)

// Asker collects a complete answer record. *prompt.Sequencer satisfies it.
type Asker interface {
	Ask(ctx context.Context) (answers.Record, error)
}

// DocumentRenderer turns a record into document bytes. *readme.Renderer
// satisfies it.
type DocumentRenderer interface {
	Render(rec answers.Record) ([]byte, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithAsker injects the component that interviews the user.
func WithAsker(asker Asker) Option {
	return func(o *Orchestrator) {
		o.asker = asker
	}
}

// WithPromptOptions configures the default prompt sequencer. Ignored when
// WithAsker is supplied.
func WithPromptOptions(options ...prompt.Option) Option {
	return func(o *Orchestrator) {
		o.promptOptions = append(o.promptOptions, options...)
	}
}

// WithRenderer injects the document renderer.
func WithRenderer(renderer DocumentRenderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithFS sets the filesystem the README is written to. Defaults to the OS
// filesystem.
func WithFS(fsys afero.Fs) Option {
	return func(o *Orchestrator) {
		o.fs = fsys
	}
}

// WithOutputPath overrides DefaultOutputPath.
func WithOutputPath(path string) Option {
	return func(o *Orchestrator) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			o.outputPath = trimmed
		}
	}
}

// WithLogger sets the structured logger used for progress and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator runs the interview, renders the README and writes it. Each
// step finishes before the next starts; the first failure ends the run.
type Orchestrator struct {
	asker           Asker
	promptOptions   []prompt.Option
	renderer        DocumentRenderer
	fs              afero.Fs
	outputPath      string
	logger          *slog.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		outputPath: DefaultOutputPath,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Result describes a completed run.
type Result struct {
	Path   string
	Bytes  int
	Record answers.Record
}

// OutputPath reports where Run writes.
func (o *Orchestrator) OutputPath() string {
	return o.outputPath
}

// Generate interviews the user and returns the rendered README without
// writing it.
func (o *Orchestrator) Generate(ctx context.Context) ([]byte, answers.Record, error) {
	if ctx == nil {
		return nil, answers.Record{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, answers.Record{}, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, answers.Record{}, err
	}

	o.logger.Debug("prompting")
	rec, err := o.asker.Ask(ctx)
	if err != nil {
		return nil, answers.Record{}, &FatalIOError{Op: OpPrompt, Err: err}
	}

	output, err := o.renderer.Render(rec)
	if err != nil {
		return nil, answers.Record{}, &FatalIOError{Op: OpRender, Err: err}
	}
	o.logger.Debug("rendered", "bytes", len(output))

	if err := readme.Verify(output); err != nil {
		o.logger.Warn("rendered README has broken links", "error", err)
	}

	return output, rec, nil
}

// Run generates the README and writes it to the output path, replacing any
// existing file. Nothing is written when prompting fails.
func (o *Orchestrator) Run(ctx context.Context) (Result, error) {
	output, rec, err := o.Generate(ctx)
	if err != nil {
		return Result{}, err
	}

	if err := afero.WriteFile(o.fs, o.outputPath, output, defaultFileMode); err != nil {
		return Result{}, &FatalIOError{Op: OpWrite, Path: o.outputPath, Err: err}
	}
	o.logger.Debug("wrote", "path", o.outputPath, "bytes", len(output))

	return Result{
		Path:   o.outputPath,
		Bytes:  len(output),
		Record: rec,
	}, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.asker == nil {
		seq, err := newSequencer(o.promptOptions...)
		if err != nil {
			o.initialiseErr = errors.Join(o.initialiseErr, fmt.Errorf("orchestrator: default prompt sequencer: %w", err))
		} else {
			o.asker = seq
		}
	}
	if o.renderer == nil {
		renderer, err := newRenderer()
		if err != nil {
			o.initialiseErr = errors.Join(o.initialiseErr, fmt.Errorf("orchestrator: default renderer: %w", err))
		} else {
			o.renderer = renderer
		}
	}

	o.defaultsApplied = true
}

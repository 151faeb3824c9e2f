package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-readmegen/pkg/answers"
	"github.com/goliatone/go-readmegen/pkg/questions"
)

// Sequencer asks every catalogue question in order and returns the completed
// answer record.
type Sequencer struct {
	driver    Driver
	catalogue *questions.Catalogue
	theme     Theme
	sanitize  Sanitizer
}

// New constructs a Sequencer with defaults (survey driver, bundled
// catalogue).
func New(options ...Option) (*Sequencer, error) {
	s := &Sequencer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.driver == nil {
		s.driver = NewSurveyDriver()
	}
	if s.catalogue == nil {
		cat, err := questions.Default()
		if err != nil {
			return nil, fmt.Errorf("prompt: load catalogue: %w", err)
		}
		s.catalogue = cat
	}

	return s, nil
}

// Ask runs the interview. Validation failures re-ask the same question; any
// driver error ends the run and is returned unchanged in the chain.
func (s *Sequencer) Ask(ctx context.Context) (answers.Record, error) {
	if ctx == nil {
		return answers.Record{}, errors.New("prompt: context is required")
	}
	if s.driver == nil {
		return answers.Record{}, errors.New("prompt: driver is nil")
	}

	values := make(map[string]string, s.catalogue.Len())
	for _, q := range s.catalogue.Questions() {
		var (
			value string
			err   error
		)
		switch q.Kind {
		case questions.KindSelect:
			value, err = s.askSelect(ctx, q)
		default:
			value, err = s.askInput(ctx, q)
		}
		if err != nil {
			return answers.Record{}, fmt.Errorf("prompt: %s: %w", q.Name, err)
		}
		values[q.Name] = value
	}

	rec, err := answers.Build(values)
	if err != nil {
		return answers.Record{}, fmt.Errorf("prompt: %w", err)
	}
	return rec, nil
}

func (s *Sequencer) askInput(ctx context.Context, q questions.Question) (string, error) {
	for {
		response, err := s.driver.Input(ctx, InputConfig{
			Message: q.Message,
			Help:    q.Help,
		})
		if err != nil {
			return "", err
		}

		value := response
		if s.sanitize != nil && q.Rule == questions.RuleRequired {
			value = s.sanitize(response)
		}

		if err := q.Validate(value); err != nil {
			var verr *questions.ValidationError
			if !errors.As(err, &verr) {
				return "", err
			}
			if err := s.driver.Info(ctx, s.theme.errorLine(verr.Message)); err != nil {
				return "", err
			}
			continue
		}

		return value, nil
	}
}

func (s *Sequencer) askSelect(ctx context.Context, q questions.Question) (string, error) {
	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      q.Message,
			Options:      q.Options,
			DefaultIndex: 0,
			Help:         q.Help,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(q.Options) {
			if err := s.driver.Info(ctx, s.theme.errorLine(fmt.Sprintf("Invalid %s selection", q.Name))); err != nil {
				return "", err
			}
			continue
		}
		return q.Options[idx], nil
	}
}

package prompt

import "github.com/goliatone/go-readmegen/pkg/questions"

// Theme formats the validation messages the sequencer reports through
// Driver.Info before re-asking a question.
type Theme struct {
	ErrorPrefix string
	// Decorate styles a finished message, e.g. with terminal colours.
	Decorate func(string) string
}

func (t Theme) errorLine(msg string) string {
	line := t.ErrorPrefix + msg
	if t.Decorate != nil {
		return t.Decorate(line)
	}
	return line
}

// Sanitizer cleans a free-text answer before it is stored.
type Sanitizer func(string) string

// Option configures the Sequencer.
type Option func(*Sequencer)

// WithDriver overrides the prompt driver used by the sequencer.
func WithDriver(driver Driver) Option {
	return func(s *Sequencer) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithCatalogue replaces the bundled question catalogue.
func WithCatalogue(cat *questions.Catalogue) Option {
	return func(s *Sequencer) {
		if cat != nil {
			s.catalogue = cat
		}
	}
}

// WithTheme applies message formatting.
func WithTheme(theme Theme) Option {
	return func(s *Sequencer) {
		s.theme = theme
	}
}

// WithSanitizer runs fn over every accepted free-text answer.
func WithSanitizer(fn Sanitizer) Option {
	return func(s *Sequencer) {
		s.sanitize = fn
	}
}

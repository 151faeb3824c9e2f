package questions

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	defaultRequiredSuffix = " cannot be empty"
	defaultInvalidEmail   = "Invalid email"
)

var (
	checkerOnce sync.Once
	checker     *validator.Validate
)

// ValidationError reports that a single answer failed its rule. It is
// recoverable: the question is asked again.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validator checks one answer.
type Validator func(input string) error

// Required rejects input that is empty after trimming whitespace. An empty
// message falls back to "<Field> cannot be empty".
func Required(field, message string) Validator {
	if message == "" {
		message = titleCase(field) + defaultRequiredSuffix
	}
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return &ValidationError{Field: field, Message: message}
		}
		return nil
	}
}

// Email rejects input that is not a local@domain.tld address.
func Email(field, message string) Validator {
	if message == "" {
		message = defaultInvalidEmail
	}
	return func(input string) error {
		if !IsEmail(input) {
			return &ValidationError{Field: field, Message: message}
		}
		return nil
	}
}

// IsEmail reports whether input passes the validator package's "email"
// rule. Input is not trimmed.
func IsEmail(input string) bool {
	checkerOnce.Do(func() {
		checker = validator.New()
	})
	return checker.Var(input, "email") == nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

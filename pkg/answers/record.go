package answers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Field names keyed in the question catalogue and the collected values map.
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldInstallation = "installation"
	FieldUsage        = "usage"
	FieldCredits      = "credits"
	FieldContributing = "contributing"
	FieldTests        = "tests"
	FieldGitHub       = "github"
	FieldEmail        = "email"
	FieldLicense      = "license"
)

// Fields lists every record field in prompt order.
var Fields = []string{
	FieldTitle,
	FieldDescription,
	FieldInstallation,
	FieldUsage,
	FieldCredits,
	FieldContributing,
	FieldTests,
	FieldGitHub,
	FieldEmail,
	FieldLicense,
}

// ErrMissingField is returned by Build when a field has no collected value.
var ErrMissingField = errors.New("answers: missing field")

// Record holds the answers for a single generation run. It is passed by value
// and has no setters; once built it does not change.
type Record struct {
	Title        string
	Description  string
	Installation string
	Usage        string
	Credits      string
	Contributing string
	Tests        string
	GitHub       string
	Email        string
	License      License
}

// IsField reports whether name is one of the record fields.
func IsField(name string) bool {
	for _, field := range Fields {
		if field == name {
			return true
		}
	}
	return false
}

// Build assembles a Record from values keyed by field name. Every field must
// be present and the license must be one of Licenses.
func Build(values map[string]string) (Record, error) {
	var missing []string
	for _, field := range Fields {
		if _, ok := values[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Record{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	license, err := ParseLicense(values[FieldLicense])
	if err != nil {
		return Record{}, err
	}

	return Record{
		Title:        values[FieldTitle],
		Description:  values[FieldDescription],
		Installation: values[FieldInstallation],
		Usage:        values[FieldUsage],
		Credits:      values[FieldCredits],
		Contributing: values[FieldContributing],
		Tests:        values[FieldTests],
		GitHub:       values[FieldGitHub],
		Email:        values[FieldEmail],
		License:      license,
	}, nil
}

// Value returns the string form of a field, or false for unknown names.
func (r Record) Value(field string) (string, bool) {
	switch field {
	case FieldTitle:
		return r.Title, true
	case FieldDescription:
		return r.Description, true
	case FieldInstallation:
		return r.Installation, true
	case FieldUsage:
		return r.Usage, true
	case FieldCredits:
		return r.Credits, true
	case FieldContributing:
		return r.Contributing, true
	case FieldTests:
		return r.Tests, true
	case FieldGitHub:
		return r.GitHub, true
	case FieldEmail:
		return r.Email, true
	case FieldLicense:
		return string(r.License), true
	default:
		return "", false
	}
}

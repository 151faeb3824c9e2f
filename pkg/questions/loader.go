package questions

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-readmegen/pkg/answers"
)

var (
	// ErrUnknownField is returned when a catalogue names a field the answer
	// record does not have.
	ErrUnknownField = errors.New("questions: unknown field")
	// ErrIncomplete is returned when a catalogue leaves a record field unasked.
	ErrIncomplete = errors.New("questions: catalogue does not cover every field")
	// ErrFreeTextLicense is returned when the license question is not a
	// select; licenses come from a fixed list only.
	ErrFreeTextLicense = errors.New("questions: license must be chosen from a list")
)

type documentFile struct {
	Questions []questionFile `yaml:"questions"`
}

type questionFile struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Message  string   `yaml:"message"`
	Help     string   `yaml:"help"`
	Validate string   `yaml:"validate"`
	Invalid  string   `yaml:"invalid"`
	Options  []string `yaml:"options"`
}

// Load reads and validates the catalogue stored at name inside fsys.
func Load(fsys fs.FS, name string) (*Catalogue, error) {
	if fsys == nil {
		return nil, errors.New("questions: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("questions: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a YAML catalogue. source is only used in error messages.
func Parse(data []byte, source string) (*Catalogue, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("questions: file %s is empty", source)
	}

	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("questions: parse %s: %w", source, err)
	}

	cat := &Catalogue{source: source}
	seen := make(map[string]struct{}, len(doc.Questions))
	for idx, raw := range doc.Questions {
		q, err := normaliseQuestion(raw, idx, source)
		if err != nil {
			return nil, err
		}
		if _, exists := seen[q.Name]; exists {
			return nil, fmt.Errorf("questions: file %s defines duplicate question %q", source, q.Name)
		}
		seen[q.Name] = struct{}{}
		cat.questions = append(cat.questions, q)
	}

	var missing []string
	for _, field := range answers.Fields {
		if _, ok := seen[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: file %s is missing %s", ErrIncomplete, source, strings.Join(missing, ", "))
	}

	return cat, nil
}

func normaliseQuestion(raw questionFile, idx int, source string) (Question, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Question{}, fmt.Errorf("questions: file %s question %d has an empty name", source, idx)
	}
	if !answers.IsField(name) {
		return Question{}, fmt.Errorf("%w %q (file %s)", ErrUnknownField, name, source)
	}

	q := Question{
		Name:    name,
		Kind:    Kind(strings.ToLower(strings.TrimSpace(raw.Kind))),
		Message: strings.TrimSpace(raw.Message),
		Help:    strings.TrimSpace(raw.Help),
		Rule:    Rule(strings.ToLower(strings.TrimSpace(raw.Validate))),
		Invalid: strings.TrimSpace(raw.Invalid),
	}
	if q.Kind == "" {
		q.Kind = KindInput
	}
	if q.Message == "" {
		return Question{}, fmt.Errorf("questions: file %s question %q has no message", source, name)
	}

	if name == answers.FieldLicense && q.Kind != KindSelect {
		return Question{}, fmt.Errorf("%w: file %s question %q must be a select", ErrFreeTextLicense, source, name)
	}

	switch q.Kind {
	case KindInput:
		switch q.Rule {
		case RuleRequired, RuleEmail:
		case "":
			q.Rule = RuleRequired
		default:
			return Question{}, fmt.Errorf("questions: file %s question %q uses unknown rule %q", source, name, raw.Validate)
		}
		if len(raw.Options) > 0 {
			return Question{}, fmt.Errorf("questions: file %s input question %q cannot define options", source, name)
		}
	case KindSelect:
		if len(raw.Options) == 0 {
			return Question{}, fmt.Errorf("questions: file %s select question %q has no options", source, name)
		}
		for i, option := range raw.Options {
			value := strings.TrimSpace(option)
			if value == "" {
				return Question{}, fmt.Errorf("questions: file %s question %q option %d is empty", source, name, i)
			}
			if name == answers.FieldLicense {
				if _, err := answers.ParseLicense(value); err != nil {
					return Question{}, fmt.Errorf("questions: file %s: %w", source, err)
				}
			}
			q.Options = append(q.Options, value)
		}
		q.Rule = ""
	default:
		return Question{}, fmt.Errorf("questions: file %s question %q uses unknown kind %q", source, name, raw.Kind)
	}

	return q, nil
}

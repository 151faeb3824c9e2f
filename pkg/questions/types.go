package questions

// Kind selects how a question is presented.
type Kind string

const (
	// KindInput asks for a single line of free text.
	KindInput Kind = "input"
	// KindSelect offers a fixed list of options; no free text is accepted.
	KindSelect Kind = "select"
)

// Rule names the validator attached to an input question.
type Rule string

const (
	// RuleRequired rejects empty or whitespace-only input.
	RuleRequired Rule = "required"
	// RuleEmail rejects input that is not an email address.
	RuleEmail Rule = "email"
)

// Question describes one prompt in the interview.
type Question struct {
	Name    string
	Kind    Kind
	Message string
	Help    string
	Rule    Rule
	// Invalid is the message shown when Rule rejects the input.
	Invalid string
	Options []string
}

// Validate runs the question's rule against input. Select questions and
// questions without a rule always pass.
func (q Question) Validate(input string) error {
	if q.Kind == KindSelect {
		return nil
	}
	switch q.Rule {
	case RuleRequired:
		return Required(q.Name, q.Invalid)(input)
	case RuleEmail:
		return Email(q.Name, q.Invalid)(input)
	default:
		return nil
	}
}

// Catalogue is an ordered, validated list of questions.
type Catalogue struct {
	source    string
	questions []Question
}

// Source reports where the catalogue was loaded from.
func (c *Catalogue) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Questions returns a copy of the questions in prompt order.
func (c *Catalogue) Questions() []Question {
	if c == nil {
		return nil
	}
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// Question looks up a question by field name.
func (c *Catalogue) Question(name string) (Question, bool) {
	if c == nil {
		return Question{}, false
	}
	for _, q := range c.questions {
		if q.Name == name {
			return q, true
		}
	}
	return Question{}, false
}

// Len reports how many questions the catalogue holds.
func (c *Catalogue) Len() int {
	if c == nil {
		return 0
	}
	return len(c.questions)
}

package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/pkg/answers"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	inputErr     error
	infoMessages []string
	inputConfigs []InputConfig
	selectConfig []SelectConfig
	inputPos     int
	selectPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputPos >= len(s.inputs) {
		if s.inputErr != nil {
			return "", s.inputErr
		}
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectConfig = append(s.selectConfig, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func validInputs() []string {
	return []string{
		"Foo",
		"A tool",
		"go install",
		"foo run",
		"Ada",
		"Open a PR",
		"go test ./...",
		"octo",
		"a@b.com",
	}
}

func TestAsk_AllValid(t *testing.T) {
	driver := &stubDriver{
		inputs:    validInputs(),
		selectIdx: []int{0},
	}
	seq, err := New(WithDriver(driver))
	if err != nil {
		t.Fatalf("new sequencer: %v", err)
	}

	rec, err := seq.Ask(context.Background())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}

	want := answers.Record{
		Title:        "Foo",
		Description:  "A tool",
		Installation: "go install",
		Usage:        "foo run",
		Credits:      "Ada",
		Contributing: "Open a PR",
		Tests:        "go test ./...",
		GitHub:       "octo",
		Email:        "a@b.com",
		License:      answers.LicenseMIT,
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infoMessages) != 0 {
		t.Fatalf("unexpected messages: %v", driver.infoMessages)
	}

	wantMessages := []string{
		"What is the title of your project?",
		"Provide a short description of your project:",
		"Provide installation instructions:",
		"Provide usage information and examples:",
		"Enter any credits or acknowledgements:",
		"Provide contribution guidelines:",
		"Provide instructions for running tests:",
		"Enter your GitHub username:",
		"Enter your email address:",
	}
	var gotMessages []string
	for _, cfg := range driver.inputConfigs {
		gotMessages = append(gotMessages, cfg.Message)
	}
	if diff := cmp.Diff(wantMessages, gotMessages); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}

	if len(driver.selectConfig) != 1 {
		t.Fatalf("expected one select prompt, got %d", len(driver.selectConfig))
	}
	if diff := cmp.Diff([]string{"MIT", "Apache--2", "GPL--3", "None"}, driver.selectConfig[0].Options); diff != "" {
		t.Fatalf("license options mismatch (-want +got):\n%s", diff)
	}
}

func TestAsk_RepromptsEmptyFreeText(t *testing.T) {
	inputs := validInputs()
	// title: empty then whitespace before a real value
	inputs = append([]string{"", "   "}, inputs...)
	driver := &stubDriver{inputs: inputs, selectIdx: []int{3}}

	seq, err := New(WithDriver(driver))
	if err != nil {
		t.Fatalf("new sequencer: %v", err)
	}
	rec, err := seq.Ask(context.Background())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if rec.Title != "Foo" {
		t.Fatalf("title = %q", rec.Title)
	}
	if rec.License != answers.LicenseNone {
		t.Fatalf("license = %q", rec.License)
	}

	want := []string{"Title cannot be empty", "Title cannot be empty"}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestAsk_RepromptsInvalidEmail(t *testing.T) {
	inputs := validInputs()
	last := len(inputs) - 1
	inputs = append(inputs[:last], "not-an-email", "user@example.com")
	driver := &stubDriver{inputs: inputs, selectIdx: []int{1}}

	seq, err := New(WithDriver(driver), WithTheme(Theme{ErrorPrefix: "✗ "}))
	if err != nil {
		t.Fatalf("new sequencer: %v", err)
	}
	rec, err := seq.Ask(context.Background())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if rec.Email != "user@example.com" {
		t.Fatalf("email = %q", rec.Email)
	}
	if rec.License != answers.LicenseApache {
		t.Fatalf("license = %q", rec.License)
	}
	if diff := cmp.Diff([]string{"✗ Invalid email"}, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestAsk_ThemeDecoratesMessages(t *testing.T) {
	inputs := append([]string{""}, validInputs()...)
	driver := &stubDriver{inputs: inputs, selectIdx: []int{0}}

	theme := Theme{
		ErrorPrefix: "! ",
		Decorate:    func(s string) string { return "[" + s + "]" },
	}
	seq, err := New(WithDriver(driver), WithTheme(theme))
	if err != nil {
		t.Fatalf("new sequencer: %v", err)
	}
	if _, err := seq.Ask(context.Background()); err != nil {
		t.Fatalf("ask: %v", err)
	}
	if diff := cmp.Diff([]string{"[! Title cannot be empty]"}, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestAsk_FieldSpecificMessages(t *testing.T) {
	cases := []struct {
		position int
		message  string
	}{
		{0, "Title cannot be empty"},
		{1, "Description cannot be empty"},
		{2, "Installation instructions cannot be empty"},
		{3, "Usage information cannot be empty"},
		{4, "Credit section cannot be empty"},
		{5, "Guidelines cannot be empty"},
		{6, "Testing instructions cannot be empty"},
		{7, "Username cannot be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			valid := validInputs()
			inputs := make([]string, 0, len(valid)+1)
			inputs = append(inputs, valid[:tc.position]...)
			inputs = append(inputs, " \t")
			inputs = append(inputs, valid[tc.position:]...)

			driver := &stubDriver{inputs: inputs, selectIdx: []int{2}}
			seq, err := New(WithDriver(driver))
			if err != nil {
				t.Fatalf("new sequencer: %v", err)
			}
			if _, err := seq.Ask(context.Background()); err != nil {
				t.Fatalf("ask: %v", err)
			}
			if diff := cmp.Diff([]string{tc.message}, driver.infoMessages); diff != "" {
				t.Fatalf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAsk_RepromptsOutOfRangeSelect(t *testing.T) {
	driver := &stubDriver{inputs: validInputs(), selectIdx: []int{-1, 4, 2}}
	seq, err := New(WithDriver(driver))
	if err != nil {
		t.Fatalf("new sequencer: %v", err)
	}
	rec, err := seq.Ask(context.Background())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if rec.License != answers.LicenseGPL {
		t.Fatalf("license = %q", rec.License)
	}
	if len(driver.infoMessages) != 2 {
		t.Fatalf("expected two selection errors, got %v", driver.infoMessages)
	}
}

func TestAsk_DriverErrorIsFatal(t *testing.T) {
	driver := &stubDriver{inputs: validInputs()[:3], inputErr: ErrAborted}
	seq, err := New(WithDriver(driver))
	if err != nil {
		t.Fatalf("new sequencer: %v", err)
	}

	_, err = seq.Ask(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if !strings.Contains(err.Error(), "usage") {
		t.Fatalf("error should name the failing field: %v", err)
	}
	if driver.selectPos != 0 {
		t.Fatalf("select prompted after fatal error")
	}
}

func TestAsk_Sanitizer(t *testing.T) {
	inputs := validInputs()
	inputs[1] = "<b></b>"
	inputs = append(inputs[:2], append([]string{"<em>fast</em> tool"}, inputs[2:]...)...)
	driver := &stubDriver{inputs: inputs, selectIdx: []int{0}}

	seq, err := New(WithDriver(driver), WithSanitizer(StripHTML))
	if err != nil {
		t.Fatalf("new sequencer: %v", err)
	}
	rec, err := seq.Ask(context.Background())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if rec.Description != "fast tool" {
		t.Fatalf("description = %q", rec.Description)
	}
	if diff := cmp.Diff([]string{"Description cannot be empty"}, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if rec.Email != "a@b.com" {
		t.Fatalf("email should not be sanitized: %q", rec.Email)
	}
}

func TestAsk_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seq, err := New(WithDriver(NewSurveyDriver()))
	if err != nil {
		t.Fatalf("new sequencer: %v", err)
	}
	if _, err := seq.Ask(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

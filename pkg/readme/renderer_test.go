package readme_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-readmegen/pkg/answers"
	"github.com/goliatone/go-readmegen/pkg/readme"
	"github.com/goliatone/go-readmegen/pkg/testsupport"
)

func TestRender_Golden(t *testing.T) {
	out, err := readme.Render(testsupport.SampleRecord())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	path := filepath.Join("testdata", "readme_mit.golden")
	if testsupport.WriteMaybeGolden(t, path, out) {
		return
	}
	want := testsupport.MustReadGoldenString(t, path)
	if diff := testsupport.CompareGolden(want, string(out)); diff != "" {
		t.Fatalf("readme mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Deterministic(t *testing.T) {
	r, err := readme.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	rec := testsupport.SampleRecord()
	rec.License = answers.LicenseGPL

	first, err := r.Render(rec)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := r.Render(rec)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("renders differ:\n%s\n---\n%s", first, second)
	}

	other, err := readme.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	third, err := other.Render(rec)
	if err != nil {
		t.Fatalf("third render: %v", err)
	}
	if !bytes.Equal(first, third) {
		t.Fatalf("separate renderers differ")
	}
}

func TestRender_Structure(t *testing.T) {
	out, err := readme.Render(testsupport.SampleRecord())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := string(out)

	if first := strings.SplitN(doc, "\n", 2)[0]; first != "# Foo" {
		t.Fatalf("first line = %q", first)
	}

	headings := []string{
		"## Description",
		"## Table of Contents",
		"## Installation",
		"## Usage",
		"## Credits",
		"## Contributing",
		"## Tests",
		"## Questions",
		"## License",
	}
	assertInOrder(t, doc, headings)

	anchors := []string{
		"- [Installation](#installation)",
		"- [Usage](#usage)",
		"- [Credits](#credits)",
		"- [Contributing](#contributing)",
		"- [Tests](#tests)",
		"- [Questions](#questions)",
		"- [License](#license)",
	}
	assertInOrder(t, doc, anchors)
}

func TestRender_QuestionsLinks(t *testing.T) {
	rec := testsupport.SampleRecord()
	rec.Email = "a@b.com"
	rec.GitHub = "ada"

	out, err := readme.Render(rec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := string(out)

	if !strings.Contains(doc, "[a@b.com](mailto:a@b.com)") {
		t.Fatalf("mailto link missing:\n%s", doc)
	}
	if !strings.Contains(doc, "[GitHub](https://github.com/ada)") {
		t.Fatalf("github link missing:\n%s", doc)
	}
}

func TestRender_LicenseNone(t *testing.T) {
	rec := testsupport.SampleRecord()
	rec.License = answers.LicenseNone

	out, err := readme.Render(rec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(string(out), "## License\n\nNo license selected at this time.\n") {
		t.Fatalf("unexpected license section:\n%s", out)
	}
	if strings.Contains(string(out), "img.shields.io") {
		t.Fatalf("badge rendered for None")
	}
}

func TestRender_VerbatimValues(t *testing.T) {
	rec := testsupport.SampleRecord()
	rec.Usage = "Pipe it: `a | b && c > out.txt`\n\n<details>raw</details>"

	out, err := readme.Render(rec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "## Usage\n\n"+rec.Usage+"\n\n## Credits") {
		t.Fatalf("usage not interpolated verbatim:\n%s", out)
	}
}

type failingEngine struct{}

func (failingEngine) RenderTemplate(string, any) (string, error) {
	return "", errors.New("boom")
}

func (failingEngine) GlobalContext(any) error { return nil }

func TestRender_EngineError(t *testing.T) {
	r, err := readme.New(readme.WithEngine(failingEngine{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Render(testsupport.SampleRecord()); err == nil {
		t.Fatalf("expected engine error")
	}
}

func assertInOrder(t *testing.T, doc string, parts []string) {
	t.Helper()
	pos := 0
	for _, part := range parts {
		idx := strings.Index(doc[pos:], part)
		if idx < 0 {
			t.Fatalf("%q missing or out of order", part)
		}
		pos += idx + len(part)
	}
}

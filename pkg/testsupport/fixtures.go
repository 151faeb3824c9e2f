package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/pkg/answers"
)

// SampleRecord returns a complete, valid answer record used across package
// tests and golden files.
func SampleRecord() answers.Record {
	return answers.Record{
		Title:        "Foo",
		Description:  "A command line tool that turns answers into a README.",
		Installation: "go install github.com/goliatone/go-readmegen/cmd/readmegen@latest",
		Usage:        "Run `readmegen` and answer each question.",
		Credits:      "Ada Lovelace",
		Contributing: "Open an issue before sending a pull request.",
		Tests:        "go test ./...",
		GitHub:       "octo",
		Email:        "a@b.com",
		License:      answers.LicenseMIT,
	}
}

// SampleValues returns SampleRecord keyed by field name, in the shape the
// prompt sequencer collects.
func SampleValues() map[string]string {
	rec := SampleRecord()
	out := make(map[string]string, len(answers.Fields))
	for _, field := range answers.Fields {
		value, _ := rec.Value(field)
		out[field] = value
	}
	return out
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

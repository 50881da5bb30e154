// Package testsupport holds helpers shared by the package tests: golden
// files and whitespace-insensitive HTML comparison.
package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// MustReadFile reads a fixture or golden file.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
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

// AssertGoldenHTML compares markup with the golden file at path after
// normalisation. With UPDATE_GOLDENS set the golden is rewritten instead.
func AssertGoldenHTML(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(NormalizeHTML(got)+"\n")) {
		return
	}
	AssertHTML(t, string(MustReadFile(t, path)), got)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

var (
	betweenTags = regexp.MustCompile(`>\s+<`)
	afterTag    = regexp.MustCompile(`>\s+`)
	beforeTag   = regexp.MustCompile(`\s+<`)
	runs        = regexp.MustCompile(`\s+`)
)

// NormalizeHTML collapses template whitespace so markup can be compared
// regardless of indentation and line breaks. Whitespace directly inside tags
// is dropped and remaining runs become a single space.
func NormalizeHTML(markup string) string {
	out := strings.TrimSpace(markup)
	out = betweenTags.ReplaceAllString(out, "><")
	out = afterTag.ReplaceAllString(out, ">")
	out = beforeTag.ReplaceAllString(out, "<")
	out = runs.ReplaceAllString(out, " ")
	return out
}

// AssertHTML compares markup after normalisation and fails with a diff.
func AssertHTML(t *testing.T, want, got string) {
	t.Helper()
	if diff := cmp.Diff(NormalizeHTML(want), NormalizeHTML(got)); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

// AssertContainsHTML fails unless the normalised markup contains fragment.
func AssertContainsHTML(t *testing.T, markup, fragment string) {
	t.Helper()
	normalized := NormalizeHTML(markup)
	if !strings.Contains(normalized, NormalizeHTML(fragment)) {
		t.Fatalf("markup does not contain fragment\nfragment: %s\n  markup: %s", NormalizeHTML(fragment), normalized)
	}
}

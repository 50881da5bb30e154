package components_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-govuk/pkg/testsupport"
)

// TestGoldenYAML renders testdata/golden/<component>.yaml and compares the
// result with the matching .html file. Run with UPDATE_GOLDENS=1 to refresh.
func TestGoldenYAML(t *testing.T) {
	gen := newGenerator(t)

	inputs, err := filepath.Glob(filepath.Join("testdata", "golden", "*.yaml"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(inputs) == 0 {
		t.Fatalf("no golden fixtures found")
	}

	for _, input := range inputs {
		name := strings.TrimSuffix(filepath.Base(input), ".yaml")
		t.Run(name, func(t *testing.T) {
			data := testsupport.MustReadFile(t, input)
			got, err := gen.RenderYAML(name, data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			golden := strings.TrimSuffix(input, ".yaml") + ".html"
			if _, err := os.Stat(golden); err != nil && os.Getenv("UPDATE_GOLDENS") == "" {
				t.Fatalf("missing golden %s", golden)
			}
			testsupport.AssertGoldenHTML(t, golden, got)
		})
	}
}

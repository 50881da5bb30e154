package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevel(t *testing.T) {
	cases := map[int]zerolog.Level{
		-1: zerolog.WarnLevel,
		0:  zerolog.WarnLevel,
		1:  zerolog.InfoLevel,
		2:  zerolog.DebugLevel,
		5:  zerolog.TraceLevel,
	}
	for verbosity, want := range cases {
		if got := Level(verbosity); got != want {
			t.Fatalf("verbosity %d: expected %s, got %s", verbosity, want, got)
		}
	}
}

func TestSetupFiltersByVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(0, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at verbosity 0: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("expected warn output, got %q", out)
	}
}

func TestComponentField(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(Setup(1, &buf), "preview")
	logger.Info().Msg("started")

	if !strings.Contains(buf.String(), "component=preview") {
		t.Fatalf("expected component field, got %q", buf.String())
	}
}

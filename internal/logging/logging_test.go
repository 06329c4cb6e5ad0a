package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", DefaultLevel},
		{"debug", zerolog.DebugLevel},
		{" INFO ", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"loud", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel)

	log.Info().Msg("hidden")
	log.Warn().Str("key", "greeting").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=greeting") {
		t.Errorf("warn message missing or malformed: %q", out)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	if got, want := DefaultDBPath(), "/custom/data/snip/snippets.db"; got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}

	t.Setenv("XDG_DATA_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	want := filepath.Join(home, ".local", "share", "snip", "snippets.db")
	if got := DefaultDBPath(); got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~", home},
		{"~/snip/db", filepath.Join(home, "snip", "db")},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

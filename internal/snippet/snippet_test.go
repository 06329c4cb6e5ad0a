package snippet

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"short", "hello", "hello"},
		{"exactly max", "0123456789abcdef", "0123456789abcdef"},
		{"long", "hello world this is long", "hello world this..."},
		{"multibyte", strings.Repeat("é", 17), strings.Repeat("é", 16) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in); got != tt.want {
				t.Errorf("Truncate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitPair(t *testing.T) {
	tests := []struct {
		in        string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"abc:def", "abc", "def", true},
		{"abc:def:ghi", "abc", "def:ghi", true},
		{"foo:", "foo", "", true},
		{":bar", "", "bar", true},
		{"plain", "plain", "", false},
	}

	for _, tt := range tests {
		key, value, ok := SplitPair(tt.in)
		if key != tt.wantKey || value != tt.wantValue || ok != tt.wantOK {
			t.Errorf("SplitPair(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, key, value, ok, tt.wantKey, tt.wantValue, tt.wantOK)
		}
	}
}

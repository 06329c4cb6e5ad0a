// Package snippet defines the key/value snippet data model.
package snippet

import "strings"

// DisplayMaxLen is the number of characters of a value shown before truncation.
const DisplayMaxLen = 16

// Ellipsis marks a truncated display value.
const Ellipsis = "..."

// Star prefixes the title of a matched snippet.
const Star = "⭐ "

// Snippet is a stored key/value pair. Key is unique.
type Snippet struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Truncate shortens s to DisplayMaxLen characters, appending Ellipsis if
// anything was cut. Counts runes, not bytes, so multibyte text is never split.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= DisplayMaxLen {
		return s
	}
	return string(runes[:DisplayMaxLen]) + Ellipsis
}

// SplitPair splits a "key:value" query on the first colon.
// ok is false when s contains no colon.
func SplitPair(s string) (key, value string, ok bool) {
	return strings.Cut(s, ":")
}

// Keys returns the keys of the given snippets in order.
func Keys(snippets []Snippet) []string {
	keys := make([]string, len(snippets))
	for i, s := range snippets {
		keys[i] = s.Key
	}
	return keys
}

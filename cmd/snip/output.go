package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/snip/internal/snippet"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that change state.
type StatusResponse struct {
	Status string `json:"status"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
}

// CountResponse reports how many snippets a bulk command touched.
type CountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Path   string `json:"path"`
}

// printSnippetsHuman prints snippets one per line as "key: value" with the
// value truncated for display.
func printSnippetsHuman(snippets []snippet.Snippet) {
	if len(snippets) == 0 {
		fmt.Println("No snippets found.")
		return
	}
	for _, sn := range snippets {
		fmt.Printf("%s%s: %s\n", snippet.Star, sn.Key, snippet.Truncate(sn.Value))
	}
}

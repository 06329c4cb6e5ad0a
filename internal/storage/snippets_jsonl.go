// Package storage handles snippet persistence in SQLite, with JSONL dumps
// for backup and version control.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/snip/internal/snippet"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ReadJSONL reads all snippets from a JSONL file.
// A missing file yields no snippets and no error.
func ReadJSONL(path string) ([]snippet.Snippet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening snippets file: %w", err)
	}
	defer f.Close()

	var snippets []snippet.Snippet
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var sn snippet.Snippet
		if err := json.Unmarshal(line, &sn); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		snippets = append(snippets, sn)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading snippets file: %w", err)
	}

	return snippets, nil
}

// WriteJSONL writes all snippets to a JSONL file, replacing existing content.
func WriteJSONL(path string, snippets []snippet.Snippet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snippets file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, sn := range snippets {
		data, err := json.Marshal(sn)
		if err != nil {
			return fmt.Errorf("encoding snippet %d: %w", i, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing snippet %d: %w", i, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing snippets file: %w", err)
	}
	return f.Close()
}

// Dedupe collapses snippets sharing a key. The last value wins and keeps the
// position of the first occurrence.
func Dedupe(snippets []snippet.Snippet) []snippet.Snippet {
	index := make(map[string]int, len(snippets))
	out := make([]snippet.Snippet, 0, len(snippets))
	for _, sn := range snippets {
		if i, found := index[sn.Key]; found {
			out[i].Value = sn.Value
			continue
		}
		index[sn.Key] = len(out)
		out = append(out, sn)
	}
	return out
}

// Import reads a JSONL file and upserts its snippets into the store in a
// single transaction. Returns the number of distinct keys written.
func (s *SnippetStore) Import(path string) (int, error) {
	snippets, err := ReadJSONL(path)
	if err != nil {
		return 0, err
	}
	snippets = Dedupe(snippets)
	if err := s.UpsertAll(snippets); err != nil {
		return 0, err
	}
	return len(snippets), nil
}

// Export writes every stored snippet to a JSONL file ordered by key.
// Returns the number of snippets written.
func (s *SnippetStore) Export(path string) (int, error) {
	snippets, err := s.All()
	if err != nil {
		return 0, err
	}
	if err := WriteJSONL(path, snippets); err != nil {
		return 0, err
	}
	return len(snippets), nil
}

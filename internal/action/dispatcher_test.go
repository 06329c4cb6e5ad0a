package action

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matsen/snip/internal/clipboard"
	"github.com/matsen/snip/internal/query"
	"github.com/matsen/snip/internal/snippet"
	"github.com/matsen/snip/internal/storage"
	"github.com/rs/zerolog"
)

// recordingStore records writes in call order.
type recordingStore struct {
	calls []string
	err   error
}

func (r *recordingStore) Upsert(key, value string) error {
	r.calls = append(r.calls, "upsert "+key+"="+value)
	return r.err
}

func (r *recordingStore) Delete(key string) error {
	r.calls = append(r.calls, "delete "+key)
	return r.err
}

// otherAction is an Action the dispatcher does not know.
type otherAction struct{ query.Copy }

func TestDispatch(t *testing.T) {
	tests := []struct {
		name       string
		action     query.Action
		wantCalls  []string
		wantWrites []string
	}{
		{
			name:       "save trims and copies",
			action:     query.Save{Key: " greet ", Value: " hello there "},
			wantCalls:  []string{"upsert greet=hello there"},
			wantWrites: []string{"hello there"},
		},
		{
			name:       "copy is verbatim",
			action:     query.Copy{Value: "  spaced\tvalue\n"},
			wantWrites: []string{"  spaced\tvalue\n"},
		},
		{
			name:      "delete trims",
			action:    query.Delete{Key: "  greet"},
			wantCalls: []string{"delete greet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingStore{}
			clip := &clipboard.Memory{}
			d := NewDispatcher(store, clip, zerolog.Nop())

			if err := d.Dispatch(tt.action); err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if !reflect.DeepEqual(store.calls, tt.wantCalls) {
				t.Errorf("store calls = %v, want %v", store.calls, tt.wantCalls)
			}
			if !reflect.DeepEqual(clip.Writes, tt.wantWrites) {
				t.Errorf("clipboard writes = %v, want %v", clip.Writes, tt.wantWrites)
			}
		})
	}
}

func TestDispatch_StoreFailureSkipsClipboard(t *testing.T) {
	store := &recordingStore{err: errors.New("locked")}
	clip := &clipboard.Memory{}
	var logBuf bytes.Buffer
	d := NewDispatcher(store, clip, zerolog.New(&logBuf))

	err := d.Dispatch(query.Save{Key: "k", Value: "v"})
	if err == nil {
		t.Fatal("Dispatch() expected error")
	}
	if len(clip.Writes) != 0 {
		t.Errorf("clipboard written after failed save: %v", clip.Writes)
	}
	if logBuf.Len() == 0 {
		t.Error("failure was not logged")
	}
}

func TestDispatch_ClipboardFailure(t *testing.T) {
	clip := &clipboard.Memory{WriteErr: clipboard.ErrClipboardUnavailable}
	d := NewDispatcher(&recordingStore{}, clip, zerolog.Nop())

	err := d.Dispatch(query.Copy{Value: "x"})
	if !clipboard.IsUnavailable(err) {
		t.Errorf("Dispatch() error = %v, want ErrClipboardUnavailable", err)
	}
}

func TestDispatch_UnknownAction(t *testing.T) {
	d := NewDispatcher(&recordingStore{}, &clipboard.Memory{}, zerolog.Nop())

	if err := d.Dispatch(otherAction{}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Dispatch(otherAction) error = %v, want ErrUnknownAction", err)
	}
	if err := d.Dispatch(nil); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Dispatch(nil) error = %v, want ErrUnknownAction", err)
	}
}

func TestInvoke(t *testing.T) {
	store := &recordingStore{}
	clip := &clipboard.Memory{}
	d := NewDispatcher(store, clip, zerolog.Nop())

	if err := d.Invoke("save", []string{"k", "v"}); err != nil {
		t.Fatalf("Invoke(save) error = %v", err)
	}
	if err := d.Invoke("delete", []string{"k"}); err != nil {
		t.Fatalf("Invoke(delete) error = %v", err)
	}
	if err := d.Invoke("explode", nil); !errors.Is(err, query.ErrUnknownMethod) {
		t.Errorf("Invoke(explode) error = %v, want ErrUnknownMethod", err)
	}

	want := []string{"upsert k=v", "delete k"}
	if !reflect.DeepEqual(store.calls, want) {
		t.Errorf("store calls = %v, want %v", store.calls, want)
	}
}

// Selecting a copy result writes the exact stored value to the clipboard.
func TestQueryThenCopy_WritesStoredValue(t *testing.T) {
	s := storage.NewSnippetStore(filepath.Join(t.TempDir(), "snippets.db"))
	stored := "  indented\n\tmulti-line value  "
	if err := s.UpsertAll([]snippet.Snippet{{Key: "block", Value: stored}}); err != nil {
		t.Fatal(err)
	}

	clip := &clipboard.Memory{}
	results := query.NewEngine(s, clip).Query("block")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	d := NewDispatcher(s, clip, zerolog.Nop())
	if err := d.Dispatch(results[0].Action); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if clip.Text != stored {
		t.Errorf("clipboard = %q, want %q", clip.Text, stored)
	}
}

// A save offered by the engine persists and is then found by lookup.
func TestQueryThenSave_Persists(t *testing.T) {
	s := storage.NewSnippetStore(filepath.Join(t.TempDir(), "snippets.db"))
	clip := &clipboard.Memory{}
	e := query.NewEngine(s, clip)
	d := NewDispatcher(s, clip, zerolog.Nop())

	results := e.Query("url: https://example.com:8080/x")
	if err := d.Dispatch(results[0].Action); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	results = e.Query("url")
	if len(results) != 1 || results[0].Action != (query.Copy{Value: "https://example.com:8080/x"}) {
		t.Errorf("lookup after save = %#v", results)
	}
	if clip.Text != "https://example.com:8080/x" {
		t.Errorf("clipboard = %q after save", clip.Text)
	}
}

package storage

import (
	"errors"
	"fmt"
)

// ErrStore matches every failure reported by SnippetStore.
var ErrStore = errors.New("snippet store error")

// StoreError reports an I/O or query failure against the snippets table.
type StoreError struct {
	Op   string // lookup, upsert, delete, import
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("snippet store %s (%s): %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStore) true for any StoreError.
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// IsStoreError returns true if err came from the snippet store.
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}

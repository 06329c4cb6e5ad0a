// Package action applies selected launcher actions to the snippet store and
// the clipboard.
package action

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matsen/snip/internal/clipboard"
	"github.com/matsen/snip/internal/query"
	"github.com/rs/zerolog"
)

// ErrUnknownAction is returned for an Action type the dispatcher cannot apply.
var ErrUnknownAction = errors.New("unknown action")

// Store is the write side of the snippet store.
type Store interface {
	Upsert(key, value string) error
	Delete(key string) error
}

// Dispatcher performs the effect of a selected result.
type Dispatcher struct {
	store Store
	clip  clipboard.Writer
	log   zerolog.Logger
}

// NewDispatcher returns a Dispatcher. Failures are logged to log as well as
// returned, since the launcher discards action responses.
func NewDispatcher(store Store, clip clipboard.Writer, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{store: store, clip: clip, log: log}
}

// Dispatch applies a:
//
//	Save   upsert the trimmed pair, then copy the trimmed value
//	Copy   copy the value unmodified
//	Delete delete the trimmed key
func (d *Dispatcher) Dispatch(a query.Action) error {
	err := d.apply(a)
	if err != nil {
		event := d.log.Error().Err(err)
		if a != nil {
			event = event.Str("method", string(a.Method()))
		}
		event.Msg("action failed")
		return err
	}
	if a != nil {
		d.log.Debug().Str("method", string(a.Method())).Msg("action applied")
	}
	return nil
}

func (d *Dispatcher) apply(a query.Action) error {
	switch a := a.(type) {
	case query.Save:
		key := strings.TrimSpace(a.Key)
		value := strings.TrimSpace(a.Value)
		if err := d.store.Upsert(key, value); err != nil {
			return fmt.Errorf("saving %q: %w", key, err)
		}
		if err := d.clip.Write(value); err != nil {
			return fmt.Errorf("copying saved %q: %w", key, err)
		}
		return nil

	case query.Copy:
		if err := d.clip.Write(a.Value); err != nil {
			return fmt.Errorf("copying: %w", err)
		}
		return nil

	case query.Delete:
		key := strings.TrimSpace(a.Key)
		if err := d.store.Delete(key); err != nil {
			return fmt.Errorf("deleting %q: %w", key, err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}

// Invoke decodes a wire method and its positional parameters and dispatches
// the resulting action.
func (d *Dispatcher) Invoke(method string, params []string) error {
	a, err := query.ParseAction(method, params)
	if err != nil {
		d.log.Error().Err(err).Str("method", method).Msg("bad action")
		return err
	}
	return d.Dispatch(a)
}

package query

import (
	"fmt"
	"strings"

	"github.com/matsen/snip/internal/clipboard"
	"github.com/matsen/snip/internal/snippet"
	"github.com/rs/zerolog"
)

// DefaultIcon is the icon path reported with every result.
const DefaultIcon = "Images/snippets.png"

// Store is the lookup side of the snippet store.
type Store interface {
	Lookup(fragment string) ([]snippet.Snippet, error)
}

// Engine answers launcher queries. It is the error boundary: Query never
// returns an error and never panics because of its collaborators.
type Engine struct {
	store Store
	clip  clipboard.Reader
	icon  string
	log   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithIcon overrides DefaultIcon.
func WithIcon(icon string) Option {
	return func(e *Engine) {
		if icon != "" {
			e.icon = icon
		}
	}
}

// WithLogger sets the logger used to report swallowed failures.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine returns an Engine over the given store and clipboard.
func NewEngine(store Store, clip clipboard.Reader, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		clip:  clip,
		icon:  DefaultIcon,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Query parses raw and returns the results to display.
//
//   - blank input gives no results and touches nothing
//   - "key:value" offers to save the pair (split on the first colon)
//   - anything else is a key fragment looked up in the store; with no
//     matches the clipboard content is offered for saving under it
//
// Any store or clipboard failure yields a single error result.
func (e *Engine) Query(raw string) (results []Result) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return []Result{}
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Str("query", q).Interface("panic", r).Msg("query panicked")
			results = []Result{e.errorResult()}
		}
	}()

	if key, value, ok := snippet.SplitPair(q); ok {
		return []Result{e.saveResult(key, value)}
	}

	results, err := e.lookup(q)
	if err != nil {
		e.log.Error().Err(err).Str("query", q).Msg("query failed")
		return []Result{e.errorResult()}
	}
	return results
}

func (e *Engine) lookup(fragment string) ([]Result, error) {
	found, err := e.store.Lookup(fragment)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", fragment, err)
	}

	if len(found) == 0 {
		text, err := e.clip.Read()
		if err != nil {
			return nil, fmt.Errorf("reading clipboard: %w", err)
		}
		if text == "" {
			return []Result{}, nil
		}
		return []Result{e.clipboardResult(fragment, text)}, nil
	}

	results := make([]Result, 0, len(found))
	for _, sn := range found {
		results = append(results, Result{
			Title:       snippet.Star + sn.Key,
			Subtitle:    SubtitleCopyHint + sn.Value,
			Icon:        e.icon,
			ContextData: []string{sn.Key, sn.Value},
			Action:      Copy{Value: sn.Value},
		})
	}
	return results, nil
}

// saveResult offers to save a pair typed as "key:value". The subtitle and
// context data keep the halves as typed; the action carries them trimmed.
func (e *Engine) saveResult(key, value string) Result {
	return Result{
		Title:       TitleSave,
		Subtitle:    pairSubtitle(key, value),
		Icon:        e.icon,
		ContextData: []string{key, value},
		Action:      Save{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)},
	}
}

// clipboardResult offers to save the clipboard under fragment. Only the
// subtitle is truncated; the action keeps the full text.
func (e *Engine) clipboardResult(fragment, text string) Result {
	return Result{
		Title:       TitleSaveClipboard,
		Subtitle:    pairSubtitle(fragment, snippet.Truncate(text)),
		Icon:        e.icon,
		ContextData: []string{fragment, text},
		Action:      Save{Key: fragment, Value: text},
	}
}

func (e *Engine) errorResult() Result {
	return Result{
		Title:    TitleError,
		Subtitle: SubtitleError,
		Icon:     e.icon,
	}
}

// ContextMenu returns the actions offered for an already displayed snippet:
// delete it, or save it again as shown. The store is not consulted.
func (e *Engine) ContextMenu(key, value string) []Result {
	subtitle := pairSubtitle(key, value)
	return []Result{
		{
			Title:       TitleDelete,
			Subtitle:    subtitle,
			Icon:        e.icon,
			ContextData: []string{key, value},
			Action:      Delete{Key: key},
		},
		{
			Title:       TitleUpdate,
			Subtitle:    subtitle,
			Icon:        e.icon,
			ContextData: []string{key, value},
			Action:      Save{Key: key, Value: value},
		},
	}
}

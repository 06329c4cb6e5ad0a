// Package query turns launcher query strings into result lists.
package query

import (
	"errors"
	"fmt"
)

// Method names an action on the wire.
type Method string

// Supported action methods.
const (
	MethodSave   Method = "save"
	MethodCopy   Method = "copy"
	MethodDelete Method = "delete"
)

// ErrUnknownMethod is returned when a wire method names no action.
var ErrUnknownMethod = errors.New("unknown action method")

// ErrBadParameters is returned when a wire action has too few parameters.
var ErrBadParameters = errors.New("missing action parameters")

// Action is what happens when the user selects a result.
// The concrete types are Save, Copy and Delete.
type Action interface {
	Method() Method
	Parameters() []string
	isAction()
}

// Save stores Key=Value and copies Value to the clipboard.
type Save struct {
	Key   string
	Value string
}

// Copy puts Value on the clipboard.
type Copy struct {
	Value string
}

// Delete removes the snippet stored under Key.
type Delete struct {
	Key string
}

func (Save) Method() Method   { return MethodSave }
func (Copy) Method() Method   { return MethodCopy }
func (Delete) Method() Method { return MethodDelete }

func (a Save) Parameters() []string   { return []string{a.Key, a.Value} }
func (a Copy) Parameters() []string   { return []string{a.Value} }
func (a Delete) Parameters() []string { return []string{a.Key} }

func (Save) isAction()   {}
func (Copy) isAction()   {}
func (Delete) isAction() {}

// ParseAction rebuilds an Action from a wire method and its positional
// parameters. Extra parameters are ignored.
func ParseAction(method string, params []string) (Action, error) {
	need := map[Method]int{MethodSave: 2, MethodCopy: 1, MethodDelete: 1}

	m := Method(method)
	n, ok := need[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if len(params) < n {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrBadParameters, m, n, len(params))
	}

	switch m {
	case MethodSave:
		return Save{Key: params[0], Value: params[1]}, nil
	case MethodCopy:
		return Copy{Value: params[0]}, nil
	default:
		return Delete{Key: params[0]}, nil
	}
}

// Result is one entry shown by the launcher.
type Result struct {
	Title       string
	Subtitle    string
	Icon        string
	ContextData []string
	Action      Action // nil for informational results
}

// Display strings shown by the launcher.
const (
	TitleSave          = "Save Code Snippet"
	TitleSaveClipboard = "Save from clipboard"
	TitleError         = "Code Snippets Error"
	TitleDelete        = "Delete Code Snippet"
	TitleUpdate        = "Save/Update Code Snippet"

	SubtitleError    = "Please, Verify and try again"
	SubtitleCopyHint = "[Snippet] Copy to clipboard with value: "
)

// pairSubtitle formats the "Key=..., Value=..." subtitle.
func pairSubtitle(key, value string) string {
	return "Key=" + key + ", Value=" + value
}

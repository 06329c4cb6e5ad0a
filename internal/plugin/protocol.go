// Package plugin speaks the launcher's JSON-RPC plugin protocol: one request
// per process, passed as a JSON argument, answered as JSON on stdout.
package plugin

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/matsen/snip/internal/query"
)

// Host methods that return results.
const (
	MethodQuery       = "query"
	MethodContextMenu = "context_menu"
)

// ErrBadRequest is returned for requests that cannot be decoded.
var ErrBadRequest = errors.New("bad plugin request")

// Request is a call from the launcher.
type Request struct {
	Method     string            `json:"method"`
	Parameters []json.RawMessage `json:"parameters"`
}

// Response wraps results returned to the launcher.
type Response struct {
	Result []WireResult `json:"result"`
}

// WireResult is a Result in the launcher's field naming.
type WireResult struct {
	Title         string      `json:"Title"`
	SubTitle      string      `json:"SubTitle"`
	IcoPath       string      `json:"IcoPath"`
	ContextData   []string    `json:"ContextData,omitempty"`
	JsonRPCAction *WireAction `json:"JsonRPCAction,omitempty"`
}

// WireAction is the action the launcher calls back with on selection.
type WireAction struct {
	Method     string   `json:"method"`
	Parameters []string `json:"parameters"`
}

// DecodeRequest parses a launcher request.
func DecodeRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if req.Method == "" {
		return nil, fmt.Errorf("%w: missing method", ErrBadRequest)
	}
	return &req, nil
}

// StringParams flattens the request parameters to strings.
// A parameter that is itself an array of strings (the launcher passes
// ContextData this way) is expanded in place. null becomes "".
func (r *Request) StringParams() ([]string, error) {
	var out []string
	for i, raw := range r.Parameters {
		var s *string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s != nil {
				out = append(out, *s)
			} else {
				out = append(out, "")
			}
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("%w: parameter %d is neither string nor string list", ErrBadRequest, i)
		}
		out = append(out, list...)
	}
	return out, nil
}

// ToWire converts engine results to the launcher's schema.
func ToWire(results []query.Result) Response {
	resp := Response{Result: make([]WireResult, 0, len(results))}
	for _, r := range results {
		w := WireResult{
			Title:       r.Title,
			SubTitle:    r.Subtitle,
			IcoPath:     r.Icon,
			ContextData: r.ContextData,
		}
		if r.Action != nil {
			w.JsonRPCAction = &WireAction{
				Method:     string(r.Action.Method()),
				Parameters: r.Action.Parameters(),
			}
		}
		resp.Result = append(resp.Result, w)
	}
	return resp
}

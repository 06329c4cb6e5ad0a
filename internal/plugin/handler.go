package plugin

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/matsen/snip/internal/action"
	"github.com/matsen/snip/internal/query"
	"github.com/rs/zerolog"
)

// ErrUnknownMethod is returned for a request method the plugin doesn't serve.
var ErrUnknownMethod = errors.New("unknown plugin method")

// Handler routes launcher requests to the query engine and the dispatcher.
type Handler struct {
	engine     *query.Engine
	dispatcher *action.Dispatcher
	log        zerolog.Logger
}

// NewHandler returns a Handler.
func NewHandler(engine *query.Engine, dispatcher *action.Dispatcher, log zerolog.Logger) *Handler {
	return &Handler{engine: engine, dispatcher: dispatcher, log: log}
}

// Handle serves one request. Query and context menu requests return a
// Response; action requests return nil. Action failures are logged by the
// dispatcher and not reported, since the launcher ignores action replies.
func (h *Handler) Handle(req *Request) (*Response, error) {
	params, err := req.StringParams()
	if err != nil {
		return nil, err
	}
	h.log.Debug().Str("method", req.Method).Strs("params", params).Msg("plugin request")

	switch req.Method {
	case MethodQuery:
		resp := ToWire(h.engine.Query(param(params, 0)))
		return &resp, nil

	case MethodContextMenu:
		resp := ToWire(h.engine.ContextMenu(param(params, 0), param(params, 1)))
		return &resp, nil

	case string(query.MethodSave), string(query.MethodCopy), string(query.MethodDelete):
		if err := h.dispatcher.Invoke(req.Method, params); errors.Is(err, query.ErrBadParameters) {
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, req.Method)
	}
}

// Serve decodes a raw request, handles it and writes any response to w.
func (h *Handler) Serve(w io.Writer, raw []byte) error {
	req, err := DecodeRequest(raw)
	if err != nil {
		return err
	}
	resp, err := h.Handle(req)
	if err != nil {
		return err
	}
	if resp == nil {
		return nil
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// param returns params[i], or "" if absent.
func param(params []string, i int) string {
	if i < len(params) {
		return params[i]
	}
	return ""
}

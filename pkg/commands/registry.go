package commands

import (
	"encoding/json"
	stderrors "errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/otomatty/shinsei/pkg/errors"
	"github.com/otomatty/shinsei/pkg/logging"
)

// Handler executes a named command. args is the raw JSON argument
// object; the returned value is marshaled as the command's result.
type Handler func(args json.RawMessage) (interface{}, error)

// ErrorPayload is the structured failure value surfaced to the UI
type ErrorPayload struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Registry maps command names to handlers
type Registry struct {
	handlers map[string]Handler
	logger   zerolog.Logger
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		logger:   logging.GetLogger("commands"),
	}
}

// Register adds a handler under the given command name, replacing any
// previous registration.
func (r *Registry) Register(name string, handler Handler) {
	r.handlers[name] = handler
}

// Names returns the registered command names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named command and returns its JSON-encoded result.
// Each call is one-shot: no retry, no backoff.
func (r *Registry) Dispatch(name string, args json.RawMessage) (json.RawMessage, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownCommand, "unknown command %q", name).
			WithDetail("command", name)
	}

	r.logger.Debug().Str("command", name).Msg("Dispatching command")

	result, err := handler(args)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal,
			"failed to encode result of %q", name)
	}
	return encoded, nil
}

// ToPayload converts an error into the structured failure value sent
// across the boundary.
func ToPayload(err error) ErrorPayload {
	var shinseiErr *errors.ShinseiError
	if stderrors.As(err, &shinseiErr) {
		return ErrorPayload{
			Code:    string(shinseiErr.Code),
			Message: shinseiErr.Message,
			Details: shinseiErr.Details,
		}
	}
	return ErrorPayload{
		Code:    string(errors.ErrUnknown),
		Message: err.Error(),
	}
}

// decodeArgs unmarshals the raw argument object into v
func decodeArgs(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		return errors.New(errors.ErrBadArgs, "missing command arguments")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrap(err, errors.ErrBadArgs, "malformed command arguments")
	}
	return nil
}

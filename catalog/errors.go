package catalog

import (
	"errors"
	"fmt"
)

// Error kinds. Store operations wrap these sentinels so callers can
// classify failures with errors.Is while messages stay descriptive.
var (
	ErrSchemaInvalid = errors.New("catalog failed schema validation")
	ErrDuplicateID   = errors.New("agent id already exists")
	ErrNotFound      = errors.New("agent not found")
	ErrPersistence   = errors.New("catalog persistence failure")
	ErrInitFailed    = errors.New("registry initialization failed")
)

// Error is the failure value produced inside store operations. Msg is the
// exact message callers observe (outer operations wrap it verbatim), Kind
// is one of the sentinel values above, and Err is the underlying cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the error's kind, so errors.Is(err, ErrNotFound) works across
// any number of message-wrapping layers.
func (e *Error) Is(target error) bool { return target == e.Kind }

func persistenceError(verb string, cause error) *Error {
	return &Error{
		Kind: ErrPersistence,
		Msg:  fmt.Sprintf("Failed to %s catalog: %v", verb, cause),
		Err:  cause,
	}
}

func duplicateIDError(id string) *Error {
	return &Error{
		Kind: ErrDuplicateID,
		Msg:  fmt.Sprintf("agent with id %q already exists", id),
	}
}

func notFoundError(id string) *Error {
	return &Error{
		Kind: ErrNotFound,
		Msg:  fmt.Sprintf("no agent with id %q", id),
	}
}

package errmsg

import "errors"

// Error kinds. Use errors.Is to classify.
var (
	// ErrInvalidEvent marks a malformed or unexpected event shape.
	ErrInvalidEvent = errors.New("invalid event")
	// ErrHandler marks a failure inside a component's own logic.
	ErrHandler = errors.New("handler error")
	// ErrDispatch marks a violated focus ring or area registry invariant.
	ErrDispatch = errors.New("dispatch error")
	// ErrIO marks an I/O failure reported by a collaborator.
	ErrIO = errors.New("i/o error")
)

// Error carries a kind, the failed operation and the component involved.
type Error struct {
	Kind      error
	Op        Op
	Component string
	Err       error
}

// Wrap builds an *Error. A nil err yields nil.
func Wrap(kind error, op Op, component string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Component: component, Err: err}
}

// IO wraps a collaborator I/O failure.
func IO(op Op, context string, err error) error {
	return Wrap(ErrIO, op, context, err)
}

func (e *Error) Error() string {
	msg := e.Kind.Error() + ": " + string(e.Op)
	if e.Component != "" {
		msg += " [" + e.Component + "]"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

package errext

import "errors"

// Exception is an error that carries the stack trace of where it was caught.
type Exception interface {
	error
	StackTrace() string
}

// WithStackTrace attaches stack (usually from runtime/debug.Stack) to err.
func WithStackTrace(err error, stack []byte) error {
	if err == nil {
		return nil
	}
	return withStack{err, string(stack)}
}

type withStack struct {
	error
	stack string
}

func (ws withStack) Unwrap() error      { return ws.error }
func (ws withStack) StackTrace() string { return ws.stack }

var _ Exception = withStack{}

// IsException reports whether err carries a stack trace.
func IsException(err error) bool {
	var xerr Exception
	return errors.As(err, &xerr)
}

package errext

import "errors"

// InterruptError reports that the process was asked to stop, e.g. by Ctrl+C.
// It is an expected way to terminate and exits with Success.
type InterruptError struct {
	Reason string
}

var _ HasExitCode = &InterruptError{}

// Error returns the reason of the interruption.
func (i *InterruptError) Error() string {
	return i.Reason
}

// ExitCode returns Success.
func (i *InterruptError) ExitCode() ExitCode {
	return Success
}

// IsInterruptError returns true if err is *InterruptError.
func IsInterruptError(err error) bool {
	if err == nil {
		return false
	}
	var intErr *InterruptError
	return errors.As(err, &intErr)
}

// Package errext attaches exit codes, hints, and stack traces to errors so the
// CLI can report failures by kind instead of funnelling them through one
// catch-all.
package errext

import "errors"

// ExitCode is the process exit status for an error that reaches main.
type ExitCode uint8

// Exit codes, one per error kind.
const (
	Success         ExitCode = 0 // interrupted normally
	Failure         ExitCode = 1 // startup or runtime failure
	InvalidArgument ExitCode = 2 // malformed command line
)

// HasExitCode is a wrapper around an error with an attached exit code.
type HasExitCode interface {
	error
	ExitCode() ExitCode
}

// WithExitCodeIfNone attaches an exit code to err unless it already has one.
// A nil error stays nil.
func WithExitCodeIfNone(err error, code ExitCode) error {
	if err == nil {
		return nil
	}
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		return err
	}
	return withExitCode{err, code}
}

type withExitCode struct {
	error
	exitCode ExitCode
}

func (we withExitCode) Unwrap() error      { return we.error }
func (we withExitCode) ExitCode() ExitCode { return we.exitCode }

var _ HasExitCode = withExitCode{}

// ExitCodeOf returns the exit code main should use for err. Errors without an
// attached code are treated as Failure.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return Success
	}
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		return ecerr.ExitCode()
	}
	return Failure
}

// ArgumentError marks err as a command-line usage error.
func ArgumentError(err error) error {
	return WithExitCodeIfNone(err, InvalidArgument)
}

// StartupFailure marks err as a failure to bring the viewer up, capturing the
// stack trace of the caller.
func StartupFailure(err error, stack []byte) error {
	return WithExitCodeIfNone(WithStackTrace(err, stack), Failure)
}

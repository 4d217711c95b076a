package errext

import "errors"

// HasHint is a wrapper around an error with a human-readable suggestion on how
// to fix it.
type HasHint interface {
	error
	Hint() string
}

// WithHint attaches a hint to err. If err already had a hint, the new hint
// becomes "new hint (old hint)".
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return withHint{err, hint}
}

type withHint struct {
	error
	hint string
}

func (wh withHint) Unwrap() error { return wh.error }

func (wh withHint) Hint() string {
	hint := wh.hint
	var oldhint HasHint
	if errors.As(wh.error, &oldhint) {
		hint = hint + " (" + oldhint.Hint() + ")"
	}
	return hint
}

var _ HasHint = withHint{}

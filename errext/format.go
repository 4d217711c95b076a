package errext

import "errors"

// Format splits err into a message and a map of extra fields. The stack trace
// of an Exception and the hint of a HasHint are returned as fields.
func Format(err error) (string, map[string]any) {
	if err == nil {
		return "", nil
	}

	fields := make(map[string]any)
	var xerr Exception
	if errors.As(err, &xerr) {
		fields["stack"] = xerr.StackTrace()
	}
	var herr HasHint
	if errors.As(err, &herr) {
		fields["hint"] = herr.Hint()
	}

	return err.Error(), fields
}

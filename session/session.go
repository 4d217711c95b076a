// Package session defines how the viewer finds the live view URL of a remote
// browser session. Sessions are created elsewhere; this package only reads
// the records they leave behind.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record exists for a session or the record
// has no live view URL.
var ErrNotFound = errors.New("browser session not found")

// Store resolves browser session IDs to presigned live view URLs.
type Store interface {
	LiveViewURL(ctx context.Context, sessionID string) (string, error)
}

// ParameterName returns the key under which a session record is stored,
// e.g. "/browser-session/abc".
func ParameterName(sessionID string) string {
	return "/browser-session/" + sessionID
}

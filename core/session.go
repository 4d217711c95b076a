package core

import (
	"time"
	"unicode/utf8"
)

// Session is the stored record for a remote browser session. Only the live
// view URL is needed by the viewer; the rest is bookkeeping for local stores.
type Session struct {
	ID          string     `json:"browser_session_id,omitempty"`
	LiveViewURL string     `json:"live_view_url"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Truncate shortens s to at most n bytes followed by "..." when it is longer
// than n. The cut never splits a UTF-8 sequence.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

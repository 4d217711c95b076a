// Package json writes API responses and reports as JSON.
package json

import (
	"encoding/json"
	"io"
)

// Renderer encodes values to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// Render writes v to w followed by a newline.
func (r *Renderer) Render(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

package html

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var content embed.FS

// Static returns the embedded viewer assets (js/, css/) for serving under
// /static.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Package html renders the live viewer pages: the DCV viewer itself and the
// SDK setup instructions, which are written in Markdown and rendered with
// goldmark + chroma.
package html

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/sonnes/liveview/core"
	"github.com/sonnes/liveview/dcv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Renderer renders viewer pages.
type Renderer struct {
	tmpl *template.Template

	// instructions is setup.md rendered once at construction.
	instructions template.HTML
}

// New creates a Renderer and pre-renders the embedded setup instructions.
func New() (*Renderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // autolinks in the instructions
		),
	)

	tmpl, err := template.New("viewer.html").ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	src, err := content.ReadFile("templates/setup.md")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render setup instructions: %w", err)
	}

	return &Renderer{
		tmpl:         tmpl,
		instructions: template.HTML(buf.String()),
	}, nil
}

// ViewerData is the input to RenderViewer.
type ViewerData struct {
	SessionID    string
	PresignedURL string
	Sizes        []core.DisplaySize
	Default      core.DisplaySize
}

// sizeButton is one entry of the display size selector.
type sizeButton struct {
	ID     string // e.g. "size-900"
	Width  int
	Height int
	Label  string
	Text   string
	Active bool
}

type viewerPage struct {
	SessionID    string
	PresignedURL string
	Sizes        []sizeButton
	Default      core.DisplaySize
}

// RenderViewer writes the viewer page for a session to w. The presigned URL
// is embedded in a script and escaped for that context.
func (r *Renderer) RenderViewer(w io.Writer, d ViewerData) error {
	sizes := d.Sizes
	if len(sizes) == 0 {
		sizes = core.DisplaySizes
	}
	def := d.Default
	if def.Width == 0 {
		def = core.DefaultDisplaySize
	}

	page := viewerPage{
		SessionID:    d.SessionID,
		PresignedURL: d.PresignedURL,
		Default:      def,
	}
	for _, s := range sizes {
		page.Sizes = append(page.Sizes, sizeButton{
			ID:     fmt.Sprintf("size-%d", s.Height),
			Width:  s.Width,
			Height: s.Height,
			Label:  s.Label,
			Text:   s.String(),
			Active: s == def,
		})
	}
	return r.tmpl.ExecuteTemplate(w, "viewer.html", page)
}

type setupFile struct {
	Name string
	dcv.FileInfo
}

type setupPage struct {
	Report       dcv.Report
	Files        []setupFile
	Instructions template.HTML
}

// RenderSetup writes the SDK setup page for the given inspection report.
func (r *Renderer) RenderSetup(w io.Writer, report dcv.Report) error {
	page := setupPage{
		Report:       report,
		Instructions: r.instructions,
	}
	for name, info := range report.Files {
		page.Files = append(page.Files, setupFile{Name: name, FileInfo: info})
	}
	sort.Slice(page.Files, func(i, j int) bool {
		return page.Files[i].Name < page.Files[j].Name
	})
	return r.tmpl.ExecuteTemplate(w, "setup.html", page)
}

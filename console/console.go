// Package console prints the launcher's human-readable status output: the
// banner panel, progress lines, the viewer URL, and failures with their
// stack traces.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/term"

	"github.com/sonnes/liveview/dcv"
	"github.com/sonnes/liveview/errext"
)

const maxWidth = 80

// Printer writes styled status text to w.
type Printer struct {
	w io.Writer

	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) width() int {
	if p.Width > 0 {
		return p.Width
	}
	f, ok := p.w.(term.File)
	if !ok {
		return maxWidth
	}
	if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
		return min(w, maxWidth)
	}
	return maxWidth
}

// Banner draws a bordered panel. The first body line is emphasized.
func (p *Printer) Banner(title string, body ...string) {
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, stylePanelTitle.Render(title), "")
	for i, l := range body {
		if i == 0 {
			l = styleBannerHead.Render(l)
		}
		lines = append(lines, l)
	}
	panel := stylePanel.Width(p.width() - 2).Render(strings.Join(lines, "\n"))
	fmt.Fprintln(p.w, panel)
}

// Info prints a progress line preceded by a blank line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleInfo.Render(fmt.Sprintf(format, args...)))
}

// Success prints a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, styleSuccess.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.w, styleWarn.Render(fmt.Sprintf(format, args...)))
}

// Dim prints a de-emphasized line.
func (p *Printer) Dim(format string, args ...any) {
	fmt.Fprintln(p.w, styleDim.Render(fmt.Sprintf(format, args...)))
}

// URL prints a heading followed by the URL on its own unstyled line, so it
// can be copied or matched verbatim.
func (p *Printer) URL(heading, url string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleHeading.Render(heading+":"))
	fmt.Fprintln(p.w, url)
}

// List prints a heading and one bullet per item.
func (p *Printer) List(heading string, items []string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleHeading.Render(heading+":"))
	for _, it := range items {
		fmt.Fprintln(p.w, styleBright.Render("• "+it))
	}
}

// Hint prints a highlighted instruction for the user.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleWarn.Render(msg))
}

// Shutdown prints the shutdown notice.
func (p *Printer) Shutdown() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleWarn.Render("Shutting down..."))
}

// Error prints err, its hint if any, and its stack trace if it carries one.
func (p *Printer) Error(err error) {
	msg, fields := errext.Format(err)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleError.Render("Error: "+msg))
	if hint, ok := fields["hint"].(string); ok {
		fmt.Fprintln(p.w, styleWarn.Render("Hint: "+hint))
	}
	if stack, ok := fields["stack"].(string); ok && stack != "" {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, styleDim.Render(strings.TrimRight(stack, "\n")))
	}
}

// SDKReport prints the result of a DCV SDK inspection along with install
// steps when the SDK is missing or incomplete.
func (p *Printer) SDKReport(r dcv.Report) {
	switch r.Status {
	case dcv.StatusFound:
		p.Success("DCV SDK found (%s bytes)", formatNumber(r.Size))
		return
	case dcv.StatusPlaceholder:
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, styleWarnBox.Render("⚠️  DCV SDK file appears to be a placeholder"))
		fmt.Fprintf(p.w, "File size: %s bytes (expected > 100KB)\n", formatNumber(r.Size))
		fmt.Fprintln(p.w, "Please replace with the real DCV SDK files")
		fmt.Fprintln(p.w)
		return
	}

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleWarnBox.Render("⚠️  DCV SDK Not Found"))
	fmt.Fprintln(p.w, "The Amazon DCV Web Client SDK is required but not found.")
	p.Dim("Expected location: %s", r.Dir)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleBright.Bold(true).Render("To obtain the DCV SDK:"))
	fmt.Fprintln(p.w, "1. Download from: "+dcv.SDKDownloadURL)
	fmt.Fprintln(p.w, "2. Extract and copy dcvjs-umd/* files to the directory above")
	fmt.Fprintln(p.w, "3. Ensure the following files exist:")
	for _, name := range dcv.RequiredFiles {
		mark := "✗"
		if r.Files[name].Exists {
			mark = "✓"
		}
		fmt.Fprintf(p.w, "   %s dcvjs/%s\n", mark, name)
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleError.Render("The viewer will not work until DCV SDK is installed!"))
	fmt.Fprintln(p.w)
}

// formatNumber formats an integer with comma separators (e.g. 1234567 → "1,234,567").
func formatNumber(n int64) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}

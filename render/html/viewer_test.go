package html

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/sonnes/liveview/core"
	"github.com/sonnes/liveview/dcv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderViewer(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.RenderViewer(&buf, ViewerData{
		SessionID:    "sess-1",
		PresignedURL: "https://live.example.com/dcv?X-Amz-Signature=abc&X-Amz-Date=20260101",
	})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "<title>Bedrock-AgentCore Browser Viewer</title>")
	assert.Contains(t, out, "sess-1")
	assert.Contains(t, out, "/static/dcvjs/dcv.js")
	assert.Contains(t, out, "/static/js/bedrock-agentcore-browser-viewer.js")

	// The URL is emitted as an escaped JS string literal.
	assert.Contains(t, out, "live.example.com")
	assert.Contains(t, out, "X-Amz-Signature=abc")
	assert.NotContains(t, out, "X-Amz-Signature=abc&X-Amz-Date")
	assert.NotContains(t, out, "{{")

	for _, s := range core.DisplaySizes {
		assert.Contains(t, out, s.String())
	}
	assert.Contains(t, out, `id="size-900" data-width="1600" data-height="900" class="active"`)
	assert.Equal(t, 1, strings.Count(out, `class="active"`))
	assert.Regexp(t, `const defaultWidth = \s*1600\s*;`, out)
}

func TestRenderViewerEscapesScript(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.RenderViewer(&buf, ViewerData{
		SessionID:    "<b>x</b>",
		PresignedURL: "https://x/';alert(1);//</script>",
	})
	require.NoError(t, err)
	out := buf.String()

	assert.NotContains(t, out, "';alert(1);//</script>")
	assert.NotContains(t, out, "<b>x</b>")
}

func TestRenderViewerCustomDefault(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.RenderViewer(&buf, ViewerData{
		PresignedURL: "https://x",
		Default:      core.DisplaySizes[2],
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `id="size-1080" data-width="1920" data-height="1080" class="active"`)
}

func TestRenderSetup(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	report := dcv.Report{
		Dir:    "static/dcvjs",
		Status: dcv.StatusPlaceholder,
		Size:   512,
		Files: map[string]dcv.FileInfo{
			"dcv.js":                   {Exists: true, Size: 512},
			"dcv/lz4decoder-worker.js": {},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.RenderSetup(&buf, report))
	out := buf.String()

	assert.Contains(t, out, `<strong id="sdk-status">placeholder</strong>`)
	assert.Contains(t, out, "static/dcvjs")
	assert.Contains(t, out, "<h2>Installing the DCV Web Client SDK</h2>")
	assert.Contains(t, out, dcv.SDKDownloadURL)
	assert.Contains(t, out, "broadwayh264decoder-worker.js")
	// Highlighted code blocks use inline styles.
	assert.Regexp(t, `<pre[^>]*style="`, out)
	assert.Less(t, strings.Index(out, "<code>dcv.js</code>"), strings.Index(out, "<code>dcv/lz4decoder-worker.js</code>"))
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"js/bedrock-agentcore-browser-viewer.js", "css/viewer.css"} {
		data, err := fs.ReadFile(Static(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data)
	}
}

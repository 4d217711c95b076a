package dcv

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs afero.Fs, path string, size int) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, make([]byte, size), 0o644))
}

func TestInspect(t *testing.T) {
	dir := filepath.Join("static", "dcvjs")

	tests := []struct {
		name   string
		setup  func(t *testing.T, fs afero.Fs)
		status Status
		files  int // number of files that exist
	}{
		{
			name:   "missing",
			setup:  func(t *testing.T, fs afero.Fs) {},
			status: StatusMissing,
		},
		{
			name: "placeholder",
			setup: func(t *testing.T, fs afero.Fs) {
				writeFile(t, fs, filepath.Join(dir, "dcv.js"), 512)
			},
			status: StatusPlaceholder,
			files:  1,
		},
		{
			name: "found",
			setup: func(t *testing.T, fs afero.Fs) {
				writeFile(t, fs, filepath.Join(dir, "dcv.js"), 250_000)
				for _, name := range RequiredFiles[1:] {
					writeFile(t, fs, filepath.Join(dir, filepath.FromSlash(name)), 100)
				}
			},
			status: StatusFound,
			files:  len(RequiredFiles),
		},
		{
			name: "dcv.js is a directory",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, fs.MkdirAll(filepath.Join(dir, "dcv.js"), 0o755))
			},
			status: StatusMissing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			tt.setup(t, fs)

			r := Inspect(fs, dir)
			assert.Equal(t, tt.status, r.Status)
			assert.Equal(t, tt.status == StatusFound, r.OK())
			assert.Len(t, r.Files, len(RequiredFiles))

			n := 0
			for _, f := range r.Files {
				if f.Exists {
					n++
				}
			}
			assert.Equal(t, tt.files, n)
		})
	}
}

func TestInspectReportsSize(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "dcvjs/dcv.js", 123_456)

	r := Inspect(fs, "dcvjs")
	assert.Equal(t, int64(123_456), r.Size)
	assert.Equal(t, FileInfo{Exists: true, Size: 123_456}, r.Files["dcv.js"])
	assert.Equal(t, FileInfo{}, r.Files["dcv/lz4decoder-worker.js"])
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "missing", StatusMissing.String())
	assert.Equal(t, "placeholder", StatusPlaceholder.String())
	assert.Equal(t, "found", StatusFound.String())
	assert.Equal(t, "unknown", Status(9).String())
}

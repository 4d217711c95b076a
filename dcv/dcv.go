// Package dcv inspects the Amazon DCV Web Client SDK files the viewer page
// loads from /static/dcvjs. The SDK is not redistributable, so users install
// it themselves and the viewer reports what it finds.
package dcv

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// SDKDownloadURL is where the DCV Web Client SDK archive is published.
const SDKDownloadURL = "https://d1uj6qtbmh3dt5.cloudfront.net/webclientsdk/nice-dcv-web-client-sdk-1.9.100-952.zip"

// placeholderSize is the size below which dcv.js is assumed to be a stub.
// The real bundle is well over 100KB.
const placeholderSize = 10000

// RequiredFiles lists the SDK files, relative to the dcvjs directory.
var RequiredFiles = []string{
	"dcv.js",
	"dcv/broadwayh264decoder-worker.js",
	"dcv/jsmpegdecoder-worker.js",
	"dcv/lz4decoder-worker.js",
	"dcv/microphoneprocessor.js",
}

// Status classifies the installed SDK.
type Status int

const (
	StatusMissing Status = iota
	StatusPlaceholder
	StatusFound
)

func (s Status) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusPlaceholder:
		return "placeholder"
	case StatusFound:
		return "found"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FileInfo describes one SDK file.
type FileInfo struct {
	Exists bool  `json:"exists"`
	Size   int64 `json:"size,omitempty"`
}

// Report is the result of Inspect.
type Report struct {
	Dir    string              `json:"dir"`
	Status Status              `json:"status"`
	Size   int64               `json:"size"` // size of dcv.js
	Files  map[string]FileInfo `json:"files"`
}

// OK reports whether the SDK looks usable.
func (r Report) OK() bool { return r.Status == StatusFound }

// Inspect checks dir on fsys for the SDK files.
func Inspect(fsys afero.Fs, dir string) Report {
	r := Report{
		Dir:   dir,
		Files: make(map[string]FileInfo, len(RequiredFiles)),
	}
	for _, name := range RequiredFiles {
		info, err := fsys.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil || info.IsDir() {
			r.Files[name] = FileInfo{}
			continue
		}
		r.Files[name] = FileInfo{Exists: true, Size: info.Size()}
	}

	main := r.Files["dcv.js"]
	switch {
	case !main.Exists:
		r.Status = StatusMissing
	case main.Size < placeholderSize:
		r.Status = StatusPlaceholder
	default:
		r.Status = StatusFound
	}
	r.Size = main.Size
	return r
}

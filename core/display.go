package core

import "fmt"

// DisplaySize is a resolution the viewer can request from the remote display.
type DisplaySize struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Label  string `json:"label"`
}

// String formats the size as "1600×900".
func (d DisplaySize) String() string {
	return fmt.Sprintf("%d×%d", d.Width, d.Height)
}

// DisplaySizes lists the sizes offered by the viewer, smallest first.
var DisplaySizes = []DisplaySize{
	{Width: 1280, Height: 720, Label: "HD"},
	{Width: 1600, Height: 900, Label: "HD+"},
	{Width: 1920, Height: 1080, Label: "Full HD"},
	{Width: 2560, Height: 1440, Label: "2K"},
}

// DefaultDisplaySize is requested through the displayLayout callback once the
// first layout event arrives.
var DefaultDisplaySize = DisplaySizes[1]

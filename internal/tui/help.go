package tui

import (
	"sync"

	"github.com/charmbracelet/glamour"

	"brewstock/internal/docs"
)

var (
	helpMu       sync.Mutex
	helpRendered map[int]string
)

// renderHelpModal shows the embedded key-binding docs, glamour-rendered at
// the modal body width. Rendered output is cached per width: creating a
// renderer can probe terminal capabilities, which is slow inside View.
func renderHelpModal(width int) string {
	bodyW := modalBodyWidth(width)

	helpMu.Lock()
	defer helpMu.Unlock()
	if helpRendered == nil {
		helpRendered = map[int]string{}
	}
	if cached, ok := helpRendered[bodyW]; ok {
		return renderModalBox(width, "Help", cached)
	}

	md, ok := docs.Get("keys")
	if !ok {
		md = "No help available."
	}
	out := md
	if r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("auto"),
		glamour.WithWordWrap(bodyW),
	); err == nil {
		if rendered, err := r.Render(md); err == nil {
			out = rendered
		}
	}
	helpRendered[bodyW] = out
	return renderModalBox(width, "Help", out)
}

package ui

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// markdownStyle is the glamour style for prose views. All bundled themes
// are dark, so the dark style suits each of them.
const markdownStyle = "dark"

var (
	rendererMu sync.Mutex
	renderers  = map[int]*glamour.TermRenderer{}
)

// renderMarkdown renders markdown at the given wrap width. Renderers are
// cached per width because building one parses the full style tree. On
// any error the raw markdown is returned so content is never lost.
func renderMarkdown(md string, width int) string {
	if width < 1 {
		width = 1
	}
	r, err := rendererFor(width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func rendererFor(width int) (*glamour.TermRenderer, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if r, ok := renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	renderers[width] = r
	return r, nil
}

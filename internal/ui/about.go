package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/calegray/foyer/internal/config"
	"github.com/calegray/foyer/internal/content"
)

// aboutView renders the about page through glamour inside a scrollable
// viewport. The copy is embedded in the binary; an about_path in the
// config replaces it.
type aboutView struct {
	md    string
	vp    viewport.Model
	ready bool
}

func newAboutView(cfg *config.Config) *aboutView {
	md := content.About()
	if cfg.AboutPath != "" {
		if data, err := os.ReadFile(cfg.AboutPath); err == nil && strings.TrimSpace(string(data)) != "" {
			md = string(data)
		}
	}
	return &aboutView{md: md}
}

func (v *aboutView) setSize(w, h int) {
	wrap := minInt(w-4, 80)
	if wrap < 1 {
		wrap = 1
	}
	if !v.ready {
		v.vp = viewport.New(w, h)
		v.ready = true
	} else {
		v.vp.Width = w
		v.vp.Height = h
	}
	v.vp.SetContent(renderMarkdown(v.md, wrap))
}

func (v *aboutView) lineDown(n int) { v.vp.LineDown(n) }
func (v *aboutView) lineUp(n int)   { v.vp.LineUp(n) }
func (v *aboutView) toTop()         { v.vp.GotoTop() }
func (v *aboutView) toBottom()      { v.vp.GotoBottom() }

// scrollPercent is shown in the footer while this view is active.
func (v *aboutView) scrollPercent() string {
	if !v.ready {
		return ""
	}
	return fmt.Sprintf("%d%%", int(v.vp.ScrollPercent()*100))
}

func (v *aboutView) view() string {
	if !v.ready {
		return ""
	}
	return v.vp.View()
}

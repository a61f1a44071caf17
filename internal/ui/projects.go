package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/calegray/foyer/internal/config"
	"github.com/calegray/foyer/internal/forge"
	"github.com/calegray/foyer/internal/state"
)

// rowHeight is the rendered height of one repository entry: a title
// line, a description line, and a separator row.
const rowHeight = 3

// springRest is the scroll speed and distance below which the spring is
// considered settled and snapped to its target.
const springRest = 0.05

type projectsView struct {
	cfg  *config.Config
	spin spinner.Model
	snap state.Snapshot
	have bool

	selected int
	scroll   float64
	scrollV  float64
	target   float64
	spring   harmonica.Spring
	jump     bool // reduce motion scrolls without the spring

	copiedAt time.Time

	width, height int
}

func newProjectsView(cfg *config.Config, reduceMotion bool) *projectsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &projectsView{
		cfg:    cfg,
		spin:   s,
		spring: harmonica.NewSpring(harmonica.FPS(30), 6.0, 0.8),
		jump:   reduceMotion,
	}
}

func (v *projectsView) setSize(w, h int) {
	v.width, v.height = w, h
	v.clampSelection()
	v.scrollIntoView()
}

func (v *projectsView) setSnapshot(snap state.Snapshot) {
	v.snap = snap
	v.have = true
	v.clampSelection()
}

func (v *projectsView) setReduceMotion(on bool) {
	v.jump = on
}

// loaded reports whether the first repository list has arrived; the
// spinner only runs before that.
func (v *projectsView) loaded() bool {
	return v.snap.HasRepos || v.snap.LastError != nil
}

// repos returns the repositories with the configured visibility filters
// applied.
func (v *projectsView) repos() []forge.Repo {
	return forge.Filter(v.snap.Repos, v.cfg.ShowForks, v.cfg.ShowArchived)
}

func (v *projectsView) clampSelection() {
	n := len(v.repos())
	if n == 0 {
		v.selected = 0
		return
	}
	v.selected = clampInt(v.selected, 0, n-1)
}

func (v *projectsView) moveSelection(delta int) {
	v.selected += delta
	v.clampSelection()
	v.scrollIntoView()
}

func (v *projectsView) toTop() {
	v.selected = 0
	v.scrollIntoView()
}

func (v *projectsView) toBottom() {
	if n := len(v.repos()); n > 0 {
		v.selected = n - 1
	}
	v.scrollIntoView()
}

// scrollIntoView retargets the spring so the selected row is fully
// visible.
func (v *projectsView) scrollIntoView() {
	listH := v.listHeight()
	if listH <= 0 {
		return
	}
	top := float64(v.selected * rowHeight)
	bottom := top + rowHeight
	if top < v.target {
		v.target = top
	}
	if bottom > v.target+float64(listH) {
		v.target = bottom - float64(listH)
	}
	maxScroll := float64(len(v.repos())*rowHeight - listH)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.target > maxScroll {
		v.target = maxScroll
	}
	if v.target < 0 {
		v.target = 0
	}
	if v.jump {
		v.scroll, v.scrollV = v.target, 0
	}
}

// step advances the scroll spring one frame.
func (v *projectsView) step() {
	if v.jump {
		v.scroll, v.scrollV = v.target, 0
		return
	}
	v.scroll, v.scrollV = v.spring.Update(v.scroll, v.scrollV, v.target)
	if math.Abs(v.scroll-v.target) < springRest && math.Abs(v.scrollV) < springRest {
		v.scroll, v.scrollV = v.target, 0
	}
}

func (v *projectsView) animating() bool {
	return v.scroll != v.target || v.scrollV != 0
}

// selectedURL returns the selected repository's page URL for the footer.
func (v *projectsView) selectedURL() string {
	repos := v.repos()
	if v.selected >= len(repos) {
		return ""
	}
	return repos[v.selected].HTMLURL
}

// yankURL puts the selected repository's URL on the system clipboard.
// Best effort: a headless host has no clipboard to write to.
func (v *projectsView) yankURL() {
	url := v.selectedURL()
	if url == "" {
		return
	}
	if err := clipboard.WriteAll(url); err == nil {
		v.copiedAt = time.Now()
	}
}

// justCopied reports whether a copy confirmation should still be shown.
func (v *projectsView) justCopied(now time.Time) bool {
	return !v.copiedAt.IsZero() && now.Sub(v.copiedAt) < 2*time.Second
}

func (v *projectsView) listHeight() int {
	h := v.height - 3 // title, banner slot, separator
	if h < 0 {
		return 0
	}
	return h
}

func (v *projectsView) view(st Styles, now time.Time) string {
	if !v.loaded() {
		return v.loading(st)
	}
	repos := v.repos()
	if len(repos) == 0 && v.snap.LastError != nil {
		return v.failed(st)
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(st.Text.Bold(true).Render("Projects"))
	b.WriteString(st.MutedText.Render(fmt.Sprintf("  %d repositories · github.com/%s · updated %s",
		len(repos), v.cfg.GitHubUser, relativeTime(v.snap.LastUpdated, now))))
	b.WriteByte('\n')
	if v.snap.IsOffline() {
		b.WriteString(" ")
		b.WriteString(st.WarningText.Render("⚠ " + classifyConnectionError(v.snap.LastError) + " · showing cached results"))
	}
	b.WriteString("\n\n")

	lines := v.listLines(st, repos, now)
	start := clampInt(int(math.Round(v.scroll)), 0, maxInt(0, len(lines)-v.listHeight()))
	end := minInt(start+v.listHeight(), len(lines))
	b.WriteString(strings.Join(lines[start:end], "\n"))
	return b.String()
}

func (v *projectsView) listLines(st Styles, repos []forge.Repo, now time.Time) []string {
	lines := make([]string, 0, len(repos)*rowHeight)
	for i, r := range repos {
		lines = append(lines, v.titleLine(st, r, i == v.selected))

		desc := r.Description
		if desc == "" {
			desc = "no description"
		}
		detail := st.MutedText.Render(truncate(desc, maxInt(v.width-30, 16))) +
			st.FaintText.Render("  pushed "+relativeTime(r.PushedAt, now))
		lines = append(lines, "     "+detail)
		lines = append(lines, "")
	}
	return lines
}

// badge is one short annotation on a repository's title row.
type badge struct {
	text  string
	style lipgloss.Style
}

func titleBadges(st Styles, r forge.Repo) []badge {
	var bs []badge
	if r.Language != "" {
		bs = append(bs, badge{"● " + r.Language, st.LangStyle(r.Language)})
	}
	if r.Stars > 0 {
		bs = append(bs, badge{fmt.Sprintf("★ %d", r.Stars), st.WarningText})
	}
	if r.Fork {
		bs = append(bs, badge{"fork", st.FaintText})
	}
	if r.Archived {
		bs = append(bs, badge{"archived", st.WarningText})
	}
	return bs
}

// titleLine renders a repository's first row. The selected row is drawn
// as a solid bar in the selection color, the way a table cursor reads.
func (v *projectsView) titleLine(st Styles, r forge.Repo, sel bool) string {
	if !sel {
		parts := []string{"  " + st.AccentText.Render(r.Name)}
		for _, b := range titleBadges(st, r) {
			parts = append(parts, b.style.Render(b.text))
		}
		return " " + strings.Join(parts, "  ")
	}

	bg := NewBgStyle(st.selectionBg)
	rowSt := st.WithBackground(st.selectionBg)
	parts := []string{bg.Render("❯", rowSt.AccentText) + bg.Space() + bg.Render(r.Name, rowSt.Text.Bold(true))}
	for _, b := range titleBadges(rowSt, r) {
		parts = append(parts, bg.Render(b.text, b.style))
	}
	return bg.FillLine(bg.Space()+bg.Join(parts, "  "), v.width)
}

func (v *projectsView) loading(st Styles) string {
	msg := v.spin.View() + " fetching repositories for " + v.cfg.GitHubUser + "…"
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, st.MutedText.Render(msg))
}

func (v *projectsView) failed(st Styles) string {
	body := st.DangerText.Render(classifyConnectionError(v.snap.LastError)) + "\n\n" +
		st.MutedText.Render(truncate(v.snap.LastError.Error(), maxInt(v.width-8, 20))) + "\n\n" +
		st.FaintText.Render("press r to retry")
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, body)
}

// relativeTime renders t against now in coarse human units.
func relativeTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 14*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

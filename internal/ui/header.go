package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/calegray/foyer/internal/forge"
)

// renderHeader draws the top bar: wordmark, view tabs, sync status.
func (m *Model) renderHeader() string {
	st := m.styles.WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("foyer", st.Logo)}
	for v := ViewHome; v <= ViewAbout; v++ {
		if v == m.view {
			// The active tab keeps its own selection background.
			parts = append(parts, m.styles.Selected.Render(" "+viewTitle(v)+" "))
		} else {
			parts = append(parts, bg.Render(viewTitle(v), st.MutedText))
		}
	}
	left := bg.Join(parts, "  ")
	right := m.statusContent(bg)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return bg.FillLine(bg.Space()+left+bg.Spaces(gap)+right, m.width)
}

// statusContent summarizes the repository sync state for the header's
// right side.
func (m *Model) statusContent(bg BgStyle) string {
	st := m.styles.WithBackground(m.theme.Surface)
	snap := m.snap
	if !m.haveSnap || (!snap.HasRepos && snap.LastError == nil) {
		return bg.Render("○ connecting…", st.MutedText)
	}
	if snap.IsOffline() {
		return bg.Render("○ "+classifyConnectionError(snap.LastError), st.DangerText)
	}
	if snap.LastError != nil {
		// First failure: keep showing data, hint that a retry is due.
		return bg.Render("◌ retrying", st.WarningText)
	}
	count := len(forge.Filter(snap.Repos, m.opts.Config.ShowForks, m.opts.Config.ShowArchived))
	return bg.Render("●", st.SuccessText) + bg.Space() +
		bg.Render(fmt.Sprintf("%d repos · synced %s", count, relativeTime(snap.LastUpdated, time.Now())), st.MutedText)
}

// renderFooter draws the bottom command bar plus view-specific context on
// the right.
func (m *Model) renderFooter() string {
	st := m.styles.WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, st.AccentText)+bg.Space()+bg.Render(h.Desc, st.MutedText))
	}
	left := bg.Join(parts, " · ")

	var rparts []string
	switch m.view {
	case ViewProjects:
		if m.projects.justCopied(time.Now()) {
			rparts = append(rparts, bg.Render("✓ copied", st.SuccessText))
		}
		if url := m.projects.selectedURL(); url != "" {
			rparts = append(rparts, bg.Render(truncateMiddle(url, 42), st.FaintText))
		}
	case ViewAbout:
		if p := m.about.scrollPercent(); p != "" {
			rparts = append(rparts, bg.Render(p, st.FaintText))
		}
	}
	if m.reduceMotion {
		rparts = append(rparts, bg.Render("M:calm", st.InfoText))
	}
	rparts = append(rparts, bg.Render("T:"+m.theme.Name, st.MutedText))
	right := bg.Join(rparts, " · ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return bg.FillLine(bg.Space()+left+bg.Spaces(gap)+right, m.width)
}

func viewTitle(v View) string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewProjects:
		return "Projects"
	case ViewAbout:
		return "About"
	default:
		return "?"
	}
}

// classifyConnectionError maps an error to a short status word for the
// header and banners.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	default:
		return "ERROR"
	}
}

// truncate shortens s to max runes, ellipsized.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string([]rune(s)[:max-1]) + "…"
}

// truncateMiddle shortens s to max runes keeping both ends, which suits
// URLs where the host and the tail both matter.
func truncateMiddle(s string, max int) string {
	n := utf8.RuneCountInString(s)
	if n <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	runes := []rune(s)
	head := (max - 1) / 2
	tail := max - 1 - head
	return string(runes[:head]) + "…" + string(runes[n-tail:])
}

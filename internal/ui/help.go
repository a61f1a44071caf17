package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpGroupTitles name the FullHelp binding groups, in order.
var helpGroupTitles = []string{"Views", "Navigate", "Actions"}

// renderHelp renders the centered help modal in place of the normal view.
func (m *Model) renderHelp() string {
	st := m.styles

	var b strings.Builder
	b.WriteString(st.AccentText.Bold(true).Render("foyer"))
	b.WriteString(st.MutedText.Render("  keybindings"))
	b.WriteByte('\n')

	for gi, group := range m.keys.FullHelp() {
		b.WriteByte('\n')
		title := ""
		if gi < len(helpGroupTitles) {
			title = helpGroupTitles[gi]
		}
		b.WriteString(st.MutedText.Bold(true).Render(title))
		b.WriteByte('\n')
		for _, bind := range group {
			h := bind.Help()
			b.WriteString("  ")
			b.WriteString(st.AccentText.Width(12).Render(h.Key))
			b.WriteString(st.Text.Render(h.Desc))
			b.WriteByte('\n')
		}
	}
	b.WriteString("\n")
	b.WriteString(st.FaintText.Render("press ? or esc to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 2).
		Width(40).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

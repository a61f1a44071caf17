package ui

import "strings"

// logoWidth is the wordmark's width in cells.
const logoWidth = 15

// logoLines is the wordmark shown at the top of the home view.
var logoLines = []string{
	"┌─┐┌─┐┬ ┬┌─┐┬─┐",
	"├┤ │ │└┬┘├┤ ├┬┘",
	"└  └─┘ ┴ └─┘┴└─",
}

// renderLogo returns the styled wordmark block.
func renderLogo(st Styles) string {
	out := make([]string, len(logoLines))
	for i, line := range logoLines {
		out[i] = st.Logo.Render(line)
	}
	return strings.Join(out, "\n")
}

// plainLogo returns the unstyled wordmark for entrance fades.
func plainLogo() string {
	return strings.Join(logoLines, "\n")
}

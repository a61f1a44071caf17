package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings for the portfolio UI.
type keyMap struct {
	Home     key.Binding
	Projects key.Binding
	About    key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Refresh  key.Binding
	Yank     key.Binding
	Scatter  key.Binding
	Theme    key.Binding
	Motion   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// defaultKeyMap returns the default keybindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Projects: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "projects"),
		),
		About: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "about"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to home"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh repos"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy repo url"),
		),
		Scatter: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scatter/restore tags"),
		),
		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		Motion: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "toggle reduced motion"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Scatter, k.Theme, k.Help, k.Quit}
}

// FullHelp returns all keybindings grouped for the help modal.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Projects, k.About, k.NextView, k.PrevView, k.Back},
		{k.Up, k.Down, k.Top, k.Bottom, k.Refresh, k.Yank},
		{k.Scatter, k.Theme, k.Motion, k.Help, k.Quit},
	}
}

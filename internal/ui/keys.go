package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	ShowLog    key.Binding
	ClearLog   key.Binding
	Toolbar    key.Binding

	// Toolbar
	Next   key.Binding
	Prev   key.Binding
	Press  key.Binding
	Editor key.Binding

	// Viewer
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Copy     key.Binding
	Close    key.Binding

	// Dialogs
	Yes     key.Binding
	No      key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("f9"),
			key.WithHelp("f9", "Cycle theme"),
		),
		ShowLog: key.NewBinding(
			key.WithKeys("ctrl+o", "f2"),
			key.WithHelp("ctrl+o/f2", "Show log"),
		),
		ClearLog: key.NewBinding(
			key.WithKeys("ctrl+l", "f8"),
			key.WithHelp("ctrl+l/f8", "Clear log"),
		),
		Toolbar: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("f6", "Focus toolbar"),
		),

		// Toolbar
		Next: key.NewBinding(
			key.WithKeys("right", "tab", "l"),
			key.WithHelp("→/tab", "Next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "shift+tab", "h"),
			key.WithHelp("←/shift+tab", "Previous button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Press button"),
		),
		Editor: key.NewBinding(
			key.WithKeys("f6", "esc", "i"),
			key.WithHelp("f6/esc/i", "Back to editor"),
		),

		// Viewer
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdown", "Page down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy snapshot"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "Close"),
		),

		// Dialogs
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "No"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ShowLog, k.ClearLog, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ShowLog, k.ClearLog, k.Toolbar},
		{k.Next, k.Prev, k.Press, k.Editor},
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown, k.Copy, k.Close},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

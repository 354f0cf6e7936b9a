package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit key.Binding
	Help key.Binding

	// Timer controls
	Start key.Binding
	Stop  key.Binding
	Reset key.Binding

	// Session type
	WorkSession  key.Binding
	BreakSession key.Binding

	// Focus
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding

	// Sliders
	Decrease key.Binding
	Increase key.Binding
	Min      key.Binding
	Max      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),

		// Timer controls
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Stop"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset"),
		),

		// Session type
		WorkSession: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Work session (idle)"),
		),
		BreakSession: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Break session (idle)"),
		),

		// Focus
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous control"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Press button"),
		),

		// Sliders
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "Minute less"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/l", "Minute more"),
		),
		Min: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "Shortest"),
		),
		Max: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Longest"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Reset, k.Next, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Timer
		{k.Start, k.Stop, k.Reset},
		{k.WorkSession, k.BreakSession},
		// Controls
		{k.Next, k.Prev, k.Activate},
		{k.Decrease, k.Increase, k.Min, k.Max},
		// General
		{k.Help, k.Quit},
	}
}

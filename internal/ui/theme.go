package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pomo/internal/state"
)

// Theme defines colors for the UI. Session and low-time colors follow the
// Chakra 400 shades the widget was designed with.
type Theme struct {
	Name string

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string

	// Ring tones
	Work    string
	Break   string
	Warning string
	Alert   string

	// Tracks
	RingTrack   string
	SliderTrack string

	// Buttons
	ButtonText string
}

// ToneColor maps a ring tone to its color.
func (t Theme) ToneColor(tone state.Tone) string {
	switch tone {
	case state.ToneAlert:
		return t.Alert
	case state.ToneWarning:
		return t.Warning
	case state.ToneBreak:
		return t.Break
	default:
		return t.Work
	}
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		RingTrack: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.RingTrack)),

		button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ButtonText)).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()),

		accent: t.Accent,
		faint:  t.Faint,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	Label      lipgloss.Style

	// Ring
	RingTrack lipgloss.Style

	button lipgloss.Style
	accent string
	faint  string
}

// Tone returns a foreground style for a ring tone.
func (s Styles) Tone(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// Button returns the style for a control button filled with color. The
// focused button gets an accent border.
func (s Styles) Button(color string, focused bool) lipgloss.Style {
	border := s.faint
	if focused {
		border = s.accent
	}
	return s.button.
		Background(lipgloss.Color(color)).
		BorderForeground(lipgloss.Color(border))
}

func defaultTheme() Theme {
	// Chakra UI palette: https://v2.chakra-ui.com/docs/styled-system/theme#colors
	return Theme{
		Name: "Chakra",

		Text:   "#F7FAFC", // gray.50
		Muted:  "#A0AEC0", // gray.400
		Faint:  "#718096", // gray.500
		Accent: "#63B3ED", // blue.300

		Work:    "#48BB78", // green.400
		Break:   "#4299E1", // blue.400
		Warning: "#ECC94B", // yellow.400
		Alert:   "#F56565", // red.400

		RingTrack:   "#E2E8F0", // gray.200
		SliderTrack: "#EDF2F7", // gray.100

		ButtonText: "#1A202C", // gray.800
	}
}

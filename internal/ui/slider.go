package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

func newSliderBar(fill, track string) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithoutPercentage(),
		progress.WithWidth(SliderWidth),
	)
	bar.EmptyColor = track
	return bar
}

// sliderRatio maps value in [lo,hi] onto [0,1].
func sliderRatio(value, lo, hi int) float64 {
	if hi <= lo {
		return 1
	}
	ratio := float64(value-lo) / float64(hi-lo)
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}

// renderSlider draws a labelled duration slider. The label mirrors the
// timer's own duration field, so it can never drift from the countdown.
func (m Model) renderSlider(title string, value, lo, hi int, bar progress.Model, focused bool) string {
	styles := m.theme.Styles()

	marker := "  "
	labelStyle := styles.Label
	if focused {
		marker = styles.AccentText.Render("▸ ")
		labelStyle = labelStyle.Foreground(lipgloss.Color(m.theme.Accent))
	}

	label := marker + labelStyle.Render(fmt.Sprintf("%s: %d minutes", title, value))
	track := "  " + bar.ViewAs(sliderRatio(value, lo, hi))
	bounds := "  " + styles.FaintText.Render(fmt.Sprintf("%-*d%*d", SliderWidth/2, lo, SliderWidth-SliderWidth/2, hi))

	return lipgloss.JoinVertical(lipgloss.Left, label, track, bounds)
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pomo/internal/state"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.place(m.renderMain())
}

// place centers content in the window once its size is known.
func (m Model) place(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderMain stacks ring, status, buttons, sliders and footer.
func (m Model) renderMain() string {
	parts := []string{
		m.renderRing(),
		m.renderStatus(),
		"",
		m.renderButtons(),
		"",
		m.renderSliders(),
	}
	if m.footer {
		parts = append(parts, "", m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// ringRadius shrinks the configured radius when the window is too short.
func (m Model) ringRadius() int {
	radius := m.radius
	if m.height <= 0 {
		return radius
	}
	for radius > 3 && 2*radius+1+ChromeHeight > m.height {
		radius--
	}
	return radius
}

func (m Model) renderRing() string {
	styles := m.theme.Styles()
	radius := m.ringRadius()
	clock := m.timer.Clock()

	label := []string{clock}
	if radius >= BigClockMinRadius {
		label = bigClock(clock)
	}

	fill := styles.Tone(m.theme.ToneColor(m.timer.Tone()))
	return renderRing(radius, m.timer.Progress(), fill, styles.RingTrack, label, styles.Label)
}

// renderStatus shows session type, countdown and run state in plain text.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()

	session := "Work"
	if !m.timer.WorkSession {
		session = "Break"
	}
	run := "idle"
	if m.timer.Running {
		run = "running"
	}

	toneStyle := styles.Tone(m.theme.ToneColor(m.timer.Tone()))
	return toneStyle.Render(session+" session") +
		styles.FaintText.Render("  ·  ") +
		styles.Text.Render(m.timer.Clock()) +
		styles.FaintText.Render("  ·  ") +
		styles.MutedText.Render(run)
}

func (m Model) renderButtons() string {
	styles := m.theme.Styles()
	buttons := []struct {
		label string
		color string
		focus focusTarget
	}{
		{"Start", m.theme.Work, focusStart},
		{"Stop", m.theme.Warning, focusStop},
		{"Reset", m.theme.Alert, focusReset},
	}

	rendered := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			rendered = append(rendered, "  ")
		}
		rendered = append(rendered, styles.Button(b.color, m.focus == b.focus).Render(b.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

func (m Model) renderSliders() string {
	work := m.renderSlider("Work Time", m.timer.WorkMinutes,
		state.MinWorkMinutes, state.MaxWorkMinutes, m.workBar, m.focus == focusWork)
	brk := m.renderSlider("Break Time", m.timer.BreakMinutes,
		state.MinBreakMinutes, state.MaxBreakMinutes, m.breakBar, m.focus == focusBreak)
	return lipgloss.JoinVertical(lipgloss.Left, work, "", brk)
}

// statusLine is the plain-text summary used by logs and tests.
func statusLine(t state.Timer) string {
	return fmt.Sprintf("%s %s", t.Phase(), t.Clock())
}

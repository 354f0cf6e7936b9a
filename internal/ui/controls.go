package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pomo/internal/state"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Start):
		return m, m.start()

	case key.Matches(msg, m.keys.Stop):
		m.stop()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil

	case key.Matches(msg, m.keys.WorkSession):
		return m, m.switchSession(true)

	case key.Matches(msg, m.keys.BreakSession):
		return m, m.switchSession(false)

	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusCount
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		return m, m.activate()

	case key.Matches(msg, m.keys.Decrease):
		return m, m.nudge(-1)

	case key.Matches(msg, m.keys.Increase):
		return m, m.nudge(1)

	case key.Matches(msg, m.keys.Min):
		return m, m.slideTo(state.MinWorkMinutes, state.MinBreakMinutes)

	case key.Matches(msg, m.keys.Max):
		return m, m.slideTo(state.MaxWorkMinutes, state.MaxBreakMinutes)
	}

	return m, nil
}

// activate presses the focused button. Sliders ignore it.
func (m *Model) activate() tea.Cmd {
	switch m.focus {
	case focusStart:
		return m.start()
	case focusStop:
		m.stop()
	case focusReset:
		m.reset()
	}
	return nil
}

func (m *Model) start() tea.Cmd {
	if !m.timer.Start() {
		return nil
	}
	log.Printf("start: %s", statusLine(m.timer))
	return m.ticker.arm()
}

func (m *Model) stop() {
	if !m.timer.Stop() {
		return
	}
	m.ticker.cancel()
	log.Printf("stop: %s", statusLine(m.timer))
}

func (m *Model) reset() {
	m.timer.Reset()
	m.ticker.cancel()
	log.Printf("reset: %s", statusLine(m.timer))
}

func (m *Model) expire() {
	m.ticker.cancel()
	log.Printf("expired: now %s", statusLine(m.timer))
}

func (m *Model) quit() {
	m.ticker.cancel()
	m.quitting = true
}

// switchSession changes the session type while idle.
func (m *Model) switchSession(work bool) tea.Cmd {
	if m.timer.Running || !m.timer.SetSession(work) {
		return nil
	}
	log.Printf("session: %s", statusLine(m.timer))
	return nil
}

// nudge moves the focused slider by delta minutes.
func (m *Model) nudge(delta int) tea.Cmd {
	switch m.focus {
	case focusWork:
		return m.setWork(m.timer.WorkMinutes + delta)
	case focusBreak:
		return m.setBreak(m.timer.BreakMinutes + delta)
	}
	return nil
}

// slideTo moves the focused slider to the given bound.
func (m *Model) slideTo(work, brk int) tea.Cmd {
	switch m.focus {
	case focusWork:
		return m.setWork(work)
	case focusBreak:
		return m.setBreak(brk)
	}
	return nil
}

// setWork applies a slider move. Moves that land on the current value are
// ignored, like a slider that fires only on change.
func (m *Model) setWork(minutes int) tea.Cmd {
	if minutes < state.MinWorkMinutes || minutes > state.MaxWorkMinutes || minutes == m.timer.WorkMinutes {
		return nil
	}
	m.timer.SetWorkDuration(minutes)
	log.Printf("work duration: %d min", minutes)
	return m.rearm()
}

func (m *Model) setBreak(minutes int) tea.Cmd {
	if minutes < state.MinBreakMinutes || minutes > state.MaxBreakMinutes || minutes == m.timer.BreakMinutes {
		return nil
	}
	m.timer.SetBreakDuration(minutes)
	log.Printf("break duration: %d min", minutes)
	return m.rearm()
}

// rearm restarts the tick chain after a duration change so no tick from
// before the change counts against the new total.
func (m *Model) rearm() tea.Cmd {
	if !m.timer.Running {
		return nil
	}
	return m.ticker.arm()
}

package state

import "fmt"

// Duration bounds and defaults, in minutes.
const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5

	MinWorkMinutes  = 1
	MaxWorkMinutes  = 60
	MinBreakMinutes = 1
	MaxBreakMinutes = 30
)

// Color policy thresholds, in seconds.
const (
	AlertSeconds   = 5 * 60
	WarningSeconds = 10 * 60
)

// Timer is the widget's entire state.
type Timer struct {
	WorkMinutes  int
	BreakMinutes int
	WorkSession  bool
	Running      bool
	SecondsLeft  int
}

// New returns a timer in the mount state: idle, work session, 25:00.
func New() Timer {
	return Timer{
		WorkMinutes:  DefaultWorkMinutes,
		BreakMinutes: DefaultBreakMinutes,
		WorkSession:  true,
		SecondsLeft:  DefaultWorkMinutes * 60,
	}
}

// SessionSeconds returns the full length of the current session.
func (t Timer) SessionSeconds() int {
	if t.WorkSession {
		return t.WorkMinutes * 60
	}
	return t.BreakMinutes * 60
}

// SetWorkDuration sets the work length, clamped to [1,60]. When a work
// session is active the countdown restarts at the new length. It reports
// whether the active session was affected.
func (t *Timer) SetWorkDuration(minutes int) bool {
	t.WorkMinutes = clamp(minutes, MinWorkMinutes, MaxWorkMinutes)
	if !t.WorkSession {
		return false
	}
	t.SecondsLeft = t.SessionSeconds()
	return true
}

// SetBreakDuration sets the break length, clamped to [1,30]. When a break
// session is active the countdown restarts at the new length. It reports
// whether the active session was affected.
func (t *Timer) SetBreakDuration(minutes int) bool {
	t.BreakMinutes = clamp(minutes, MinBreakMinutes, MaxBreakMinutes)
	if t.WorkSession {
		return false
	}
	t.SecondsLeft = t.SessionSeconds()
	return true
}

// SetSession switches between work and break. The countdown restarts at
// the new session's length. It reports whether the session type changed.
func (t *Timer) SetSession(work bool) bool {
	if t.WorkSession == work {
		return false
	}
	t.WorkSession = work
	t.SecondsLeft = t.SessionSeconds()
	return true
}

// Start marks the timer running. It reports true only on the idle to
// running edge; starting a running timer changes nothing.
func (t *Timer) Start() bool {
	if t.Running {
		return false
	}
	t.Running = true
	return true
}

// Stop halts the countdown without touching the time left.
func (t *Timer) Stop() bool {
	if !t.Running {
		return false
	}
	t.Running = false
	return true
}

// Reset stops the timer and restores the default durations with 25:00 on
// the clock. The session type is kept.
func (t *Timer) Reset() {
	t.Running = false
	t.WorkMinutes = DefaultWorkMinutes
	t.BreakMinutes = DefaultBreakMinutes
	t.SecondsLeft = DefaultWorkMinutes * 60
}

// Tick advances a running timer by one second. When the last second runs
// out the session type flips, the timer stops and the clock is loaded with
// the next session's length. It reports whether the session expired.
func (t *Timer) Tick() bool {
	if !t.Running {
		return false
	}
	if t.SecondsLeft > 1 {
		t.SecondsLeft--
		return false
	}
	t.Running = false
	t.WorkSession = !t.WorkSession
	t.SecondsLeft = t.SessionSeconds()
	return true
}

// Progress returns the remaining fraction of the session as a percentage
// in [0,100]. It is 0 only when no seconds are left.
func (t Timer) Progress() float64 {
	total := t.SessionSeconds()
	if total <= 0 || t.SecondsLeft <= 0 {
		return 0
	}
	if t.SecondsLeft >= total {
		return 100
	}
	return float64(t.SecondsLeft) / float64(total) * 100
}

// Tone returns the color role for the current countdown. Low time wins
// over session type.
func (t Timer) Tone() Tone {
	switch {
	case t.SecondsLeft <= AlertSeconds:
		return ToneAlert
	case t.SecondsLeft <= WarningSeconds:
		return ToneWarning
	case t.WorkSession:
		return ToneWork
	default:
		return ToneBreak
	}
}

// Clock formats the time left as zero-padded MM:SS.
func (t Timer) Clock() string {
	return FormatClock(t.SecondsLeft)
}

// Phase returns the state machine position.
func (t Timer) Phase() Phase {
	switch {
	case t.Running && t.WorkSession:
		return RunningWork
	case t.Running:
		return RunningBreak
	case t.WorkSession:
		return IdleWork
	default:
		return IdleBreak
	}
}

// FormatClock renders seconds as MM:SS. Negative input renders as 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

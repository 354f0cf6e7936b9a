package state

// Phase is a position in the {Running, WorkSession} state machine.
type Phase int

const (
	IdleWork Phase = iota
	RunningWork
	IdleBreak
	RunningBreak
)

func (p Phase) String() string {
	switch p {
	case IdleWork:
		return "idle-work"
	case RunningWork:
		return "running-work"
	case IdleBreak:
		return "idle-break"
	case RunningBreak:
		return "running-break"
	default:
		return "unknown"
	}
}

// Tone is the color role the progress ring is drawn in.
type Tone int

const (
	ToneWork Tone = iota
	ToneBreak
	ToneWarning
	ToneAlert
)

func (t Tone) String() string {
	switch t {
	case ToneWork:
		return "work"
	case ToneBreak:
		return "break"
	case ToneWarning:
		return "warning"
	case ToneAlert:
		return "alert"
	default:
		return "unknown"
	}
}

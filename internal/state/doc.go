// Package state holds the Pomodoro timer data model and its transitions.
//
// # Overview
//
// Timer is the single piece of mutable state behind the widget: the two
// configured durations, the session type, the running flag and the seconds
// left in the current session. Everything the UI draws is derived from it.
//
// The package does no I/O and owns no goroutines. The once-per-second
// driver lives in the ui package and calls Tick; user controls call the
// remaining methods. Both run on the Bubble Tea update loop, so Timer is
// not safe for concurrent use and does not need to be.
//
// # State Machine
//
// The observable state is the pair {Running, WorkSession}:
//
//	           Start                        Start
//	IdleWork ────────→ RunningWork   IdleBreak ────────→ RunningBreak
//	   ↑      ←────────     │           ↑      ←────────      │
//	   │        Stop        │ expiry    │        Stop         │ expiry
//	   │                    ↓           │                     │
//	   │                IdleBreak ──────┘                     │
//	   └──────────────────────────────────────────────────────┘
//
// Expiry (SecondsLeft reaching zero while running) flips the session type
// and stops the timer. The next session never starts on its own.
//
// Reset returns to Idle with the default 25/5 durations and 1500 seconds
// left, keeping the current session type.
//
// # Derived Values
//
// Progress is computed on read from SecondsLeft and the session total, so
// it never lags the displayed countdown. Tone applies the color policy:
// alert at or below five minutes, warning at or below ten, otherwise the
// session color. Clock formats the countdown as MM:SS.
//
// # Usage Example
//
//	t := state.New()
//	t.SetWorkDuration(50)
//	t.Start()
//	for t.Running {
//		t.Tick()
//	}
//	fmt.Println(t.Phase(), t.Clock()) // idle-break 05:00
package state

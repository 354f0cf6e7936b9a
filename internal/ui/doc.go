// Package ui provides the terminal user interface for pomo.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model that owns a state.Timer and renders
// it as a circular progress ring with the countdown in its center, a row of
// buttons, and two duration sliders. The timer itself is pure data; this
// package decides when it ticks and how it looks.
//
// # Package Structure
//
//   - app.go: Model, Update loop, and the Run entry point
//   - ticker.go: the once-per-second tick chain
//   - controls.go: key handling and timer operations
//   - view.go: layout of ring, status line, buttons, sliders and footer
//   - ring.go, clock.go: ring geometry and block digits
//   - slider.go: labelled duration sliders on bubbles/progress
//   - help.go: full-screen key reference
//   - keys.go, theme.go, layout.go: bindings, palette and sizes
//
// # Ticking
//
// Each started run arms a new tick chain identified by a generation id.
// Stopping, resetting, expiry and quitting cancel the chain, and changing a
// duration while running re-arms it. Ticks from an older generation are
// dropped when they arrive, so a second Start can never make the clock run
// faster.
//
// # Key Bindings
//
//	s / x / r       Start, Stop, Reset
//	w / b           Switch to work or break session (idle only)
//	tab / shift+tab Move focus between buttons and sliders
//	enter / space   Press the focused button
//	←/h, →/l        Move the focused slider by one minute
//	home / end      Move the focused slider to its bounds
//	?               Toggle help
//	q / ctrl+c      Quit
package ui

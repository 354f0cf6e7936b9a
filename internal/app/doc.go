// Package app is the composition root for pomo.
//
// Run loads the optional TOML config, points the standard logger at a file
// (or discards it, since the TUI owns the terminal), and hands control to
// the Bubble Tea program in package ui until the user quits or the context
// is cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()   Read ~/.config/pomo/config.toml
//	       ├─────> setupLogging()  tea.LogToFile or io.Discard
//	       └─────> ui.Run()        Start TUI (blocks)
//
// Startup failures (malformed config, unwritable log file) are returned
// wrapped. Nothing after startup can fail: timer operations are total.
package app

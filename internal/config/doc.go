// Package config loads pomo's optional startup configuration.
//
// # Overview
//
// The timer itself keeps nothing between runs. This package only covers how
// the program starts: where debug logs go, whether the alternate screen is
// used, how large the progress ring is drawn and whether the footer help
// line is shown.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pomo/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing, keep the defaults for them
//
// A file that exists but is not valid TOML is an error; pomo refuses to
// start rather than silently ignoring it.
//
// # Configuration Fields
//
//	log_file    = "~/.local/state/pomo/pomo.log"  # empty: logs are discarded
//	alt_screen  = true                            # full-screen mode
//	ring_radius = 8                               # clamped to [6,12]
//	show_help   = true                            # footer key hints
//
// # Path Expansion
//
// Paths starting with ~ are expanded to the user's home directory and made
// absolute.
package config

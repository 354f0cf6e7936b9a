package ui

import "time"

// Timing constants.
const (
	// DefaultTickInterval is the countdown cadence.
	DefaultTickInterval = time.Second
)

// Layout constants.
const (
	// SliderWidth is the width of a duration slider track in cells.
	SliderWidth = 40

	// ChromeHeight is the number of rows used below the ring: status line,
	// buttons, sliders, footer and spacing.
	ChromeHeight = 16

	// BigClockMinRadius is the smallest ring radius that fits block digits.
	BigClockMinRadius = 7
)

package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	fillGlyph  = "●"
	trackGlyph = "·"
	emptyGlyph = " "
)

type cell struct {
	x, y int
}

// ringCells returns the cells of an ellipse with the given row radius,
// ordered clockwise starting at 12 o'clock. Terminal cells are roughly
// twice as tall as wide, so the horizontal radius is doubled. Coordinates
// are relative to the top-left corner of a (4r+1) x (2r+1) grid.
func ringCells(radius int) []cell {
	if radius <= 0 {
		return nil
	}
	rx := float64(2 * radius)
	ry := float64(radius)
	steps := int(math.Ceil(2 * math.Pi * rx * 4))

	seen := make(map[cell]struct{}, steps)
	cells := make([]cell, 0, steps)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		c := cell{
			x: 2*radius + int(math.Round(rx*math.Sin(theta))),
			y: radius - int(math.Round(ry*math.Cos(theta))),
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		cells = append(cells, c)
	}
	return cells
}

// filledCells converts a percentage into a number of ring cells. Any
// positive percentage lights at least one cell so the ring is empty only
// at zero.
func filledCells(percent float64, total int) int {
	if percent <= 0 || total <= 0 {
		return 0
	}
	if percent >= 100 {
		return total
	}
	n := int(math.Ceil(percent / 100 * float64(total)))
	if n > total {
		return total
	}
	return n
}

// renderRing draws the progress ring with label lines centered inside it.
func renderRing(radius int, percent float64, fill, track lipgloss.Style, label []string, labelStyle lipgloss.Style) string {
	width := 4*radius + 1
	height := 2*radius + 1

	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = emptyGlyph
		}
	}

	cells := ringCells(radius)
	lit := filledCells(percent, len(cells))
	filled := fill.Render(fillGlyph)
	empty := track.Render(trackGlyph)
	for i, c := range cells {
		if i < lit {
			grid[c.y][c.x] = filled
		} else {
			grid[c.y][c.x] = empty
		}
	}

	top := radius - len(label)/2
	for i, line := range label {
		y := top + i
		if y < 0 || y >= height {
			continue
		}
		runes := []rune(line)
		left := (width - len(runes)) / 2
		for j, r := range runes {
			x := left + j
			if x < 0 || x >= width {
				continue
			}
			grid[y][x] = labelStyle.Render(string(r))
		}
	}

	rows := make([]string, height)
	for y, row := range grid {
		rows[y] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}

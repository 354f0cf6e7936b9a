package ui

import (
	"strings"
	"testing"
)

func TestSliderRatio(t *testing.T) {
	cases := []struct {
		name          string
		value, lo, hi int
		want          float64
	}{
		{"min", 1, 1, 60, 0},
		{"max", 60, 1, 60, 1},
		{"middle", 16, 1, 31, 0.5},
		{"below", -3, 1, 30, 0},
		{"above", 99, 1, 30, 1},
		{"empty_range", 5, 5, 5, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sliderRatio(tc.value, tc.lo, tc.hi); got != tc.want {
				t.Fatalf("sliderRatio(%d, %d, %d) = %v, want %v", tc.value, tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}

func TestRenderSliderLabel(t *testing.T) {
	m := newTestModel()
	out := m.renderSlider("Break Time", 12, 1, 30, m.breakBar, false)
	if !strings.Contains(out, "Break Time: 12 minutes") {
		t.Fatalf("slider missing label:\n%s", out)
	}
	if strings.Contains(out, "▸") {
		t.Fatalf("unfocused slider shows focus marker")
	}

	out = m.renderSlider("Break Time", 12, 1, 30, m.breakBar, true)
	if !strings.Contains(out, "▸") {
		t.Fatalf("focused slider missing focus marker")
	}
}

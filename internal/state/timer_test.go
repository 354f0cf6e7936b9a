package state

import (
	"math"
	"testing"
)

func TestNew_MountState(t *testing.T) {
	tm := New()
	if tm.WorkMinutes != 25 || tm.BreakMinutes != 5 {
		t.Fatalf("durations = %d/%d, want 25/5", tm.WorkMinutes, tm.BreakMinutes)
	}
	if !tm.WorkSession || tm.Running {
		t.Fatalf("WorkSession=%v Running=%v, want true/false", tm.WorkSession, tm.Running)
	}
	if tm.SecondsLeft != 1500 {
		t.Fatalf("SecondsLeft = %d, want 1500", tm.SecondsLeft)
	}
	if got := tm.Progress(); got != 100 {
		t.Fatalf("Progress() = %v, want 100", got)
	}
	if got := tm.Phase(); got != IdleWork {
		t.Fatalf("Phase() = %v, want %v", got, IdleWork)
	}
}

func TestSetWorkDuration_AllValidMinutes(t *testing.T) {
	for m := MinWorkMinutes; m <= MaxWorkMinutes; m++ {
		tm := New()
		tm.Start()
		tm.Tick()
		tm.Tick()
		if !tm.SetWorkDuration(m) {
			t.Fatalf("SetWorkDuration(%d) = false, want true in a work session", m)
		}
		if tm.SecondsLeft != m*60 {
			t.Fatalf("SetWorkDuration(%d): SecondsLeft = %d, want %d", m, tm.SecondsLeft, m*60)
		}
		if got := tm.Progress(); got != 100 {
			t.Fatalf("SetWorkDuration(%d): Progress() = %v, want 100", m, got)
		}
		if !tm.Running {
			t.Fatalf("SetWorkDuration(%d) changed Running", m)
		}
	}
}

func TestSetWorkDuration_Clamps(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-10, 1},
		{61, 60},
		{500, 60},
		{30, 30},
	}
	for _, tt := range tests {
		tm := New()
		tm.SetWorkDuration(tt.in)
		if tm.WorkMinutes != tt.want {
			t.Fatalf("SetWorkDuration(%d): WorkMinutes = %d, want %d", tt.in, tm.WorkMinutes, tt.want)
		}
	}
}

func TestSetBreakDuration_OnlyAffectsBreakSession(t *testing.T) {
	tm := New()
	if tm.SetBreakDuration(10) {
		t.Fatalf("SetBreakDuration during work session reported an active-session change")
	}
	if tm.SecondsLeft != 1500 || tm.BreakMinutes != 10 {
		t.Fatalf("got SecondsLeft=%d BreakMinutes=%d, want 1500/10", tm.SecondsLeft, tm.BreakMinutes)
	}

	tm.SetSession(false)
	if !tm.SetBreakDuration(45) {
		t.Fatalf("SetBreakDuration during break session = false, want true")
	}
	if tm.BreakMinutes != 30 || tm.SecondsLeft != 1800 {
		t.Fatalf("got BreakMinutes=%d SecondsLeft=%d, want 30/1800", tm.BreakMinutes, tm.SecondsLeft)
	}
}

func TestSetWorkDuration_DuringBreakKeepsCountdown(t *testing.T) {
	tm := New()
	tm.SetSession(false)
	tm.Start()
	tm.Tick()
	if tm.SetWorkDuration(40) {
		t.Fatalf("SetWorkDuration during break reported an active-session change")
	}
	if tm.SecondsLeft != 299 {
		t.Fatalf("SecondsLeft = %d, want 299", tm.SecondsLeft)
	}
}

func TestStartStop_Edges(t *testing.T) {
	tm := New()
	if !tm.Start() {
		t.Fatal("first Start() = false, want true")
	}
	if tm.Start() {
		t.Fatal("second Start() = true, want false")
	}
	if !tm.Stop() {
		t.Fatal("first Stop() = false, want true")
	}
	if tm.Stop() {
		t.Fatal("second Stop() = true, want false")
	}
}

func TestTick_KTicksThenStop(t *testing.T) {
	for _, k := range []int{0, 1, 7, 60, 1499} {
		tm := New()
		before := tm.SecondsLeft
		tm.Start()
		for i := 0; i < k; i++ {
			tm.Tick()
		}
		tm.Stop()
		if tm.SecondsLeft != before-k {
			t.Fatalf("after %d ticks SecondsLeft = %d, want %d", k, tm.SecondsLeft, before-k)
		}
		if tm.Running {
			t.Fatalf("after %d ticks and Stop, Running = true", k)
		}
	}
}

func TestTick_IdleIsNoop(t *testing.T) {
	tm := New()
	if tm.Tick() {
		t.Fatal("Tick() on idle timer reported expiry")
	}
	if tm.SecondsLeft != 1500 {
		t.Fatalf("SecondsLeft = %d, want 1500", tm.SecondsLeft)
	}
}

func TestTick_ExpiryFlipsSessionOnce(t *testing.T) {
	tm := New()
	tm.SetWorkDuration(1)
	tm.Start()

	expiries := 0
	for i := 0; i < 120; i++ {
		if tm.Tick() {
			expiries++
		}
	}
	if expiries != 1 {
		t.Fatalf("expiries = %d, want 1", expiries)
	}
	if tm.Running {
		t.Fatal("Running = true after expiry, want false")
	}
	if tm.WorkSession {
		t.Fatal("WorkSession = true after work expiry, want false")
	}
	if tm.Phase() != IdleBreak {
		t.Fatalf("Phase() = %v, want %v", tm.Phase(), IdleBreak)
	}
}

func TestTick_FullWorkSessionEndsInIdleBreak(t *testing.T) {
	tm := New()
	tm.Start()
	for i := 0; i < 1500; i++ {
		tm.Tick()
	}
	if tm.Phase() != IdleBreak {
		t.Fatalf("Phase() = %v, want %v", tm.Phase(), IdleBreak)
	}
	if tm.SecondsLeft != 300 {
		t.Fatalf("SecondsLeft = %d, want 300", tm.SecondsLeft)
	}
	if got := tm.Progress(); got != 100 {
		t.Fatalf("Progress() = %v, want 100", got)
	}
}

func TestTick_BreakExpiryReturnsToIdleWork(t *testing.T) {
	tm := New()
	tm.SetSession(false)
	tm.SetBreakDuration(1)
	tm.Start()
	for i := 0; i < 60; i++ {
		tm.Tick()
	}
	if tm.Phase() != IdleWork {
		t.Fatalf("Phase() = %v, want %v", tm.Phase(), IdleWork)
	}
	if tm.SecondsLeft != 1500 {
		t.Fatalf("SecondsLeft = %d, want 1500", tm.SecondsLeft)
	}
}

func TestReset_FromAnyState(t *testing.T) {
	build := map[string]func() Timer{
		"mount": New,
		"running work": func() Timer {
			tm := New()
			tm.SetWorkDuration(50)
			tm.Start()
			tm.Tick()
			return tm
		},
		"idle break": func() Timer {
			tm := New()
			tm.SetBreakDuration(20)
			tm.SetSession(false)
			return tm
		},
		"running break": func() Timer {
			tm := New()
			tm.SetSession(false)
			tm.Start()
			tm.Tick()
			return tm
		},
	}
	for name, mk := range build {
		t.Run(name, func(t *testing.T) {
			tm := mk()
			session := tm.WorkSession
			tm.Reset()
			if tm.WorkMinutes != 25 || tm.BreakMinutes != 5 {
				t.Fatalf("durations = %d/%d, want 25/5", tm.WorkMinutes, tm.BreakMinutes)
			}
			if tm.SecondsLeft != 1500 {
				t.Fatalf("SecondsLeft = %d, want 1500", tm.SecondsLeft)
			}
			if tm.Running {
				t.Fatal("Running = true after Reset")
			}
			if tm.WorkSession != session {
				t.Fatalf("WorkSession = %v, want %v (unchanged)", tm.WorkSession, session)
			}
			if got := tm.Progress(); got != 100 {
				t.Fatalf("Progress() = %v, want 100", got)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	tm := New()
	tm.SecondsLeft = 750
	if got := tm.Progress(); math.Abs(got-50) > 1e-9 {
		t.Fatalf("Progress() = %v, want 50", got)
	}
	tm.SecondsLeft = 1
	if got := tm.Progress(); got <= 0 {
		t.Fatalf("Progress() at 1s = %v, want > 0", got)
	}
	tm.SecondsLeft = 0
	if got := tm.Progress(); got != 0 {
		t.Fatalf("Progress() at 0s = %v, want 0", got)
	}
}

func TestTone(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		work    bool
		want    Tone
	}{
		{"work plenty", 1500, true, ToneWork},
		{"break plenty", 1200, false, ToneBreak},
		{"work warning edge", 600, true, ToneWarning},
		{"just above warning", 601, true, ToneWork},
		{"break warning", 450, false, ToneWarning},
		{"alert edge", 300, true, ToneAlert},
		{"break low time is alert", 300, false, ToneAlert},
		{"zero", 0, true, ToneAlert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Timer{WorkMinutes: 30, BreakMinutes: 30, WorkSession: tt.work, SecondsLeft: tt.seconds}
			if got := tm.Tone(); got != tt.want {
				t.Fatalf("Tone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{65, "01:05"},
		{0, "00:00"},
		{599, "09:59"},
		{1500, "25:00"},
		{3600, "60:00"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Fatalf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if got := RunningBreak.String(); got != "running-break" {
		t.Fatalf("RunningBreak.String() = %q, want running-break", got)
	}
	if got := Phase(99).String(); got != "unknown" {
		t.Fatalf("Phase(99).String() = %q, want unknown", got)
	}
}

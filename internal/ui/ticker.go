package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is delivered once per interval while the timer runs. The id ties
// it to the chain that scheduled it.
type tickMsg struct {
	id int
	at time.Time
}

// ticker owns the single repeating tick chain. Arming starts a new chain
// and orphans any previous one; cancelling orphans the current chain
// without starting another. Orphaned ticks are dropped on arrival, so at
// most one chain can ever mutate the timer.
type ticker struct {
	id       int
	armed    bool
	interval time.Duration
}

func newTicker(interval time.Duration) ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return ticker{interval: interval}
}

// arm starts a fresh chain. The first tick lands one full interval later.
func (t *ticker) arm() tea.Cmd {
	t.id++
	t.armed = true
	return t.next()
}

// next schedules the following tick of the current chain.
func (t *ticker) next() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return tickMsg{id: id, at: at}
	})
}

func (t *ticker) cancel() {
	if !t.armed {
		return
	}
	t.id++
	t.armed = false
}

// accept reports whether msg belongs to the live chain.
func (t ticker) accept(msg tickMsg) bool {
	return t.armed && msg.id == t.id
}

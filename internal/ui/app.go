package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pomo/internal/config"
	"github.com/five82/pomo/internal/state"
)

// focusTarget identifies the control that receives enter and arrow keys.
type focusTarget int

const (
	focusStart focusTarget = iota
	focusStop
	focusReset
	focusWork
	focusBreak
	focusCount
)

// Options configures the UI.
type Options struct {
	Config   config.Config
	Interval time.Duration // tick cadence; zero uses one second
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Timer state
	timer  state.Timer
	ticker ticker

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	workBar  progress.Model
	breakBar progress.Model
	focus    focusTarget
	radius   int
	footer   bool
	showHelp bool
	width    int
	height   int
	quitting bool
}

// New creates a new Bubble Tea model in the mount state.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg.RingRadius == 0 {
		cfg = config.Default()
	}
	theme := defaultTheme()

	return Model{
		timer:    state.New(),
		ticker:   newTicker(opts.Interval),
		theme:    theme,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		workBar:  newSliderBar(theme.Work, theme.SliderTrack),
		breakBar: newSliderBar(theme.Break, theme.SliderTrack),
		focus:    focusStart,
		radius:   config.ClampRingRadius(cfg.RingRadius),
		footer:   cfg.ShowHelp,
	}
}

// Timer returns a copy of the current timer state.
func (m Model) Timer() state.Timer {
	return m.timer
}

// Init implements tea.Model. The timer mounts idle, so nothing is scheduled.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleTick advances the timer for ticks from the live chain and keeps
// the chain going until the session expires or the timer is stopped.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.accept(msg) {
		return m, nil
	}
	if m.timer.Tick() {
		m.expire()
		return m, nil
	}
	return m, m.ticker.next()
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Config.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

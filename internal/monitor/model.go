package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/ptop/internal/logger"
	"github.com/rileyhilliard/ptop/internal/ui"
)

// tickMsg schedules the next sampling cycle.
type tickMsg time.Time

// snapshotMsg delivers a finished cycle: a snapshot, or the error that
// sank it.
type snapshotMsg struct {
	snap *Snapshot
	err  error
}

// Model is the Bubble Tea model for the live dashboard. Cycles are
// strictly serialized: a tick triggers one collection, and only the
// arrival of its result schedules the next tick, so the collector's rate
// state is never touched concurrently.
type Model struct {
	collector *Collector
	opts      RenderOptions
	log       logger.Logger

	snap     *Snapshot
	notice   string
	spinner  spinner.Model
	quitting bool
}

// NewModel creates the dashboard model. The first frame appears once the
// baseline-priming cycle completes; until then a spinner is shown.
func NewModel(collector *Collector, opts RenderOptions, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	opts.QuitHint = true

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorInfo)

	return Model{
		collector: collector,
		opts:      opts,
		log:       log,
		spinner:   sp,
	}
}

// Init starts the spinner and the first collection cycle.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.collectCmd())
}

// Update handles messages. The only accepted input is quitting; every
// other key is ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, m.collectCmd()

	case snapshotMsg:
		if msg.err != nil {
			// The aggregate sources failed this cycle. Keep the last good
			// frame on screen and try again next tick.
			m.log.Warn("cycle failed: %v", msg.err)
			m.notice = "last cycle failed: " + msg.err.Error()
		} else {
			m.snap = msg.snap
			m.notice = ""
		}
		return m, m.tickCmd()

	case spinner.TickMsg:
		if m.snap != nil {
			return m, nil // warmed up, let the spinner wind down
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current frame, or the warmup spinner before the first
// snapshot lands.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snap == nil {
		if m.notice != "" {
			return ErrorNoticeStyle.Render(m.notice) + "\n"
		}
		return m.spinner.View() + " sampling...\n"
	}

	opts := m.opts
	opts.Notice = m.notice
	return Render(m.snap, opts)
}

// tickCmd schedules the next cycle after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	interval := m.opts.Refresh
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd runs one collection cycle.
func (m Model) collectCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.collector.Collect(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

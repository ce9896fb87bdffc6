package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/rileyhilliard/ptop/internal/logger"
	"github.com/rileyhilliard/ptop/internal/monitor"
)

// runDashboard starts the monitor in the mode the environment calls for:
// the interactive dashboard on a terminal, the plain loop when piped or
// when --plain asks for it.
func runDashboard(cfg *config.Config) error {
	log := logger.New(os.Stderr, "monitor", debugFlag)

	applyColorMode(cfg.Color)

	collector := monitor.NewCollector(cfg.ProcRoot, cfg.ProcessLimit)
	collector.SetLogger(log)

	opts := monitor.RenderOptions{
		BarWidth: cfg.BarWidth,
		Refresh:  cfg.RefreshInterval,
	}

	if cfg.Plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		loop := monitor.NewLoop(collector, os.Stdout, opts, log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return loop.Run(ctx)
	}

	model := monitor.NewModel(collector, opts, log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// applyColorMode forces color on or off; "auto" leaves detection to
// lipgloss.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
